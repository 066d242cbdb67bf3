package main

import (
	"errors"
	"log"
	"net/http"

	"travelbook/src/booking"
	"travelbook/src/fare"
	"travelbook/src/inventory"
	"travelbook/src/otp"
	"travelbook/src/seating"
	"travelbook/src/tickets"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidRequest),
		errors.Is(err, seating.ErrInvalidSeat),
		errors.Is(err, seating.ErrDuplicateSeat),
		errors.Is(err, seating.ErrClassMismatch),
		errors.Is(err, fare.ErrInvalidPassengerCount),
		errors.Is(err, fare.ErrCouponScope),
		errors.Is(err, fare.ErrCouponInactive),
		errors.Is(err, fare.ErrInvalidCoupon),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, otp.ErrExpired),
		errors.Is(err, otp.ErrMismatch),
		errors.Is(err, tickets.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, booking.ErrItemNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrInsufficientSeats),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrDeparted),
		errors.Is(err, booking.ErrSeatTaken),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, otp.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, otp.ErrStoreUnavailable),
		errors.Is(err, tickets.ErrSharingDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error processing %s %s: %s\n", ctx.Request.Method, ctx.FullPath(), err.Error())
		ctx.JSON(status, gin.H{"error": "Error while processing request"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
