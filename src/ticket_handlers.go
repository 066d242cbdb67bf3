package main

import (
	"fmt"
	"log"
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/tickets"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func ticketHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		GET("/bookings/:id/ticket", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var query types.TicketDownloadQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.Get(ctx, userActor(ctx), params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			if b.Status.Canceled() {
				ctx.JSON(http.StatusConflict, gin.H{"error": "booking is canceled"})
				return
			}
			if query.ShareLink {
				url, err := svc.Sharer.Link(ctx, *b, func() ([]byte, error) { return svc.Tickets.PDF(*b) })
				if err != nil {
					log.Printf("[Tickets] Could not share ticket for %s: %s\n", b.ID, err.Error())
					abortWithError(ctx, err)
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"url": url}})
				return
			}
			pdf, err := svc.Tickets.PDF(*b)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, tickets.FileName(*b)))
			ctx.Data(http.StatusOK, "application/pdf", pdf)
		})
	return g
}
