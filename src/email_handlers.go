package main

import (
	"log"
	"net/http"

	"travelbook/src/boot"
	"travelbook/src/types"

	"github.com/gin-gonic/gin"
)

func otpHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/email/send-otp", func(ctx *gin.Context) {
			var body types.SendOTPRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			code, err := svc.OTP.Issue(ctx, body.Email)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			if err := svc.Mailer.SendOTP(ctx, body.Email, code); err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not send verification email", "warning": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": true}})
		}).
		POST("/email/verify-otp", func(ctx *gin.Context) {
			var body types.VerifyOTPRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := svc.OTP.Verify(ctx, body.Email, body.OTP); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"verified": true}})
		})
	return g
}

func confirmationHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/email/send-confirmation", func(ctx *gin.Context) {
			var body types.SendConfirmationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := svc.Bookings.Get(ctx, userActor(ctx), body.BookingID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			if err := svc.Mailer.SendBookingConfirmation(ctx, *b); err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not send confirmation email", "warning": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": true}})
		})
	return g
}

func notificationHandlers(g *gin.RouterGroup, svc *boot.Services) *gin.RouterGroup {
	g.
		POST("/email/send-notification", func(ctx *gin.Context) {
			var body types.SendNotificationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := svc.Mailer.SendNotification(ctx, body.To, body.Subject, body.Message); err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not send notification", "warning": err.Error()})
				return
			}
			log.Printf("[Email] Notification %q sent to %d recipients by %s\n", body.Subject, len(body.To), ctx.GetString("email"))
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"sent": len(body.To)}})
		})
	return g
}
