package main

import (
	"log"
	"net/http"

	"travelbook/src/booking"
	"travelbook/src/boot"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func userActor(ctx *gin.Context) booking.Actor {
	return booking.Actor{UserID: ctx.GetString("uid")}
}

func bookingFilter(ctx *gin.Context) (booking.Filter, error) {
	var query types.BookingsQueryFilters
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return booking.Filter{}, err
	}
	return booking.Filter{Status: types.BookingStatus(query.Status), Kind: types.BookingKind(query.Kind)}, nil
}

func bookingHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			filter, err := bookingFilter(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filter.UserID = ctx.GetString("uid")
			bookings, err := svc.Bookings.List(ctx, filter)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			req, err := booking.NewRequest(body.Kind, body.ItemID, body.Class, body.Passengers)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			result, err := svc.Bookings.Create(ctx, booking.Order{
				UserID:       ctx.GetString("uid"),
				Request:      req,
				CouponCode:   body.CouponCode,
				ContactEmail: body.ContactEmail,
				ContactPhone: body.ContactPhone,
			})
			if err != nil {
				log.Printf("[Booking] Could not create booking on %s %s: %s\n", body.Kind, body.ItemID, err.Error())
				abortWithError(ctx, err)
				return
			}
			res := gin.H{"data": result.Booking}
			if result.Warning != "" {
				res["warning"] = result.Warning
			}
			ctx.JSON(http.StatusCreated, res)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.Get(ctx, userActor(ctx), params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.EditBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.EditPassengers(ctx, userActor(ctx), params.ID, body.Passengers, body.ContactEmail, body.ContactPhone)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.Cancel(ctx, userActor(ctx), params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		})
	return g
}

func adminBookingHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	admin := booking.Actor{Admin: true}
	g.
		GET("/bookings", func(ctx *gin.Context) {
			filter, err := bookingFilter(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bookings, err := svc.Bookings.List(ctx, filter)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.Cancel(ctx, admin, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			log.Printf("[Booking] %s canceled by admin %s\n", b.ID, ctx.GetString("email"))
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		POST("/checkin", func(ctx *gin.Context) {
			var body types.CheckInRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			code, err := svc.Tickets.ResolveCode(body.TicketCode)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			b, err := svc.Bookings.CheckIn(ctx, code)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		})
	return g
}
