package main

import (
	"log"
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func busHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/buses/search", func(ctx *gin.Context) {
			var query types.SearchQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			buses, err := svc.Catalog.SearchBuses(ctx, query)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": buses, "count": len(buses)})
		}).
		GET("/buses/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bus, err := svc.Catalog.Bus(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bus})
		}).
		GET("/buses/:id/seats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			held, err := svc.Bookings.HeldSeats(ctx, types.KIND_BUS, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"held": held}})
		})
	return g
}

func busFromBody(body types.CreateBusRequestBody) models.Bus {
	return models.Bus{
		Operator:       body.Operator,
		BusNumber:      body.BusNumber,
		Origin:         body.Origin,
		Destination:    body.Destination,
		Date:           body.Date,
		DepartureTime:  body.DepartureTime,
		ArrivalTime:    body.ArrivalTime,
		Price:          body.Price,
		GST:            body.GSTRate,
		CleanlinessFee: body.CleanlinessFee,
		MaintenanceFee: body.MaintenanceFee,
		HygieneFee:     body.HygieneFee,
		SeatsAvailable: body.SeatsAvailable,
	}
}

func adminBusHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/buses", func(ctx *gin.Context) {
			var body types.CreateBusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bus := busFromBody(body)
			if err := svc.DB.Create(&bus).Error; err != nil {
				log.Printf("[Buses] Error creating bus: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			if err := svc.Inventory.Seed(ctx, types.KIND_BUS, bus.ID, bus.SeatsAvailable); err != nil {
				log.Printf("[Buses] Error seeding seats for %s: %s\n", bus.ID, err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": bus})
		}).
		PUT("/buses/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bus := busFromBody(body)
			bus.ID = params.ID
			res := svc.DB.
				Model(&models.Bus{ID: params.ID}).
				Select("*").
				Omit("id", "created_at", "deleted_at").
				Updates(&bus)
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
				return
			}
			if err := svc.Inventory.Seed(ctx, types.KIND_BUS, bus.ID, bus.SeatsAvailable); err != nil {
				log.Printf("[Buses] Error seeding seats for %s: %s\n", bus.ID, err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bus})
		}).
		DELETE("/buses/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res := svc.DB.Where("id = ?", params.ID).Delete(&models.Bus{})
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
