package main

import (
	"log"
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func flightHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/flights/search", func(ctx *gin.Context) {
			var query types.SearchQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			flights, err := svc.Catalog.SearchFlights(ctx, query)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flights, "count": len(flights)})
		}).
		GET("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			flight, err := svc.Catalog.Flight(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flight})
		}).
		GET("/flights/:id/seats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			held, err := svc.Bookings.HeldSeats(ctx, types.KIND_FLIGHT, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"held": held}})
		})
	return g
}

func flightFromBody(body types.CreateFlightRequestBody) models.Flight {
	return models.Flight{
		Airline:                  body.Airline,
		FlightNumber:             body.FlightNumber,
		Origin:                   body.Origin,
		Destination:              body.Destination,
		Date:                     body.Date,
		DepartureTime:            body.DepartureTime,
		ArrivalTime:              body.ArrivalTime,
		FlightType:               body.FlightType,
		EconomyPrice:             body.EconomyPrice,
		BusinessPrice:            body.BusinessPrice,
		GSTEconomyDomestic:       body.GSTEconomyDomestic,
		GSTEconomyInternational:  body.GSTEconomyInternational,
		GSTBusinessDomestic:      body.GSTBusinessDomestic,
		GSTBusinessInternational: body.GSTBusinessInternational,
		SeatsAvailable:           body.SeatsAvailable,
	}
}

func adminFlightHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/flights", func(ctx *gin.Context) {
			var body types.CreateFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			flight := flightFromBody(body)
			if err := svc.DB.Create(&flight).Error; err != nil {
				log.Printf("[Flights] Error creating flight: %s\n", err.Error())
				abortWithError(ctx, err)
				return
			}
			if err := svc.Inventory.Seed(ctx, types.KIND_FLIGHT, flight.ID, flight.SeatsAvailable); err != nil {
				log.Printf("[Flights] Error seeding seats for %s: %s\n", flight.ID, err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": flight})
		}).
		PUT("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			flight := flightFromBody(body)
			flight.ID = params.ID
			res := svc.DB.
				Model(&models.Flight{ID: params.ID}).
				Select("*").
				Omit("id", "created_at", "deleted_at").
				Updates(&flight)
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
				return
			}
			if err := svc.Inventory.Seed(ctx, types.KIND_FLIGHT, flight.ID, flight.SeatsAvailable); err != nil {
				log.Printf("[Flights] Error seeding seats for %s: %s\n", flight.ID, err.Error())
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flight})
		}).
		DELETE("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res := svc.DB.Where("id = ?", params.ID).Delete(&models.Flight{})
			if res.Error != nil {
				abortWithError(ctx, res.Error)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
