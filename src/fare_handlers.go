package main

import (
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func fareHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/fares/quote", func(ctx *gin.Context) {
			var body types.FareQuoteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			breakdown, err := svc.Bookings.Quote(ctx, body.Kind, body.ItemID, body.Class, body.PassengerCount, body.CouponCode)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": breakdown})
		})
	return g
}
