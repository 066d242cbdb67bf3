package models

import (
	"testing"
	"time"

	"travelbook/src/types"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	cases := []struct {
		date   string
		status types.BookingStatus
		want   types.BookingStatus
	}{
		{"2026-03-09", types.BOOKING_ACTIVE, types.BOOKING_COMPLETED},
		{"2026-03-09", types.BOOKING_CHECKED_IN, types.BOOKING_COMPLETED},
		{"2026-03-10", types.BOOKING_ACTIVE, types.BOOKING_ACTIVE},
		{"2026-03-11", types.BOOKING_CHECKED_IN, types.BOOKING_CHECKED_IN},
		{"2026-03-01", types.BOOKING_CANCELED_BY_USER, types.BOOKING_CANCELED_BY_USER},
		{"2026-03-01", types.BOOKING_CANCELED_BY_ADMIN, types.BOOKING_CANCELED_BY_ADMIN},
		{"not-a-date", types.BOOKING_ACTIVE, types.BOOKING_ACTIVE},
	}
	for _, tc := range cases {
		b := &Booking{Date: tc.date, Status: tc.status}
		assert.Equal(t, tc.want, b.EffectiveStatus(now), "%s/%s", tc.date, tc.status)
	}
}

func TestFlightGSTRate(t *testing.T) {
	f := &Flight{
		FlightType:               types.FLIGHT_INTERNATIONAL,
		GSTEconomyDomestic:       5,
		GSTEconomyInternational:  12,
		GSTBusinessDomestic:      14,
		GSTBusinessInternational: 18,
	}
	assert.Equal(t, 12.0, f.GSTRate(types.CLASS_ECONOMY))
	assert.Equal(t, 18.0, f.GSTRate(types.CLASS_BUSINESS))
	f.FlightType = types.FLIGHT_DOMESTIC
	assert.Equal(t, 5.0, f.GSTRate(types.CLASS_ECONOMY))
	assert.Equal(t, 14.0, f.GSTRate(types.CLASS_BUSINESS))
}

func TestCouponTerms(t *testing.T) {
	var none *Coupon
	assert.Nil(t, none.Terms())

	c := &Coupon{Code: "FLY20", DiscountType: types.DISCOUNT_PERCENTAGE, DiscountValue: 20, ApplicableTo: types.SCOPE_FLIGHTS, Active: true}
	terms := c.Terms()
	assert.Equal(t, "FLY20", terms.Code)
	assert.Equal(t, types.SCOPE_FLIGHTS, terms.Scope)
	assert.True(t, terms.Active)
}
