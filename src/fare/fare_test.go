package fare_test

import (
	"testing"

	"travelbook/src/fare"
	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domesticFlight() *models.Flight {
	return &models.Flight{
		FlightType:               types.FLIGHT_DOMESTIC,
		EconomyPrice:             5000,
		BusinessPrice:            12000,
		GSTEconomyDomestic:       5,
		GSTEconomyInternational:  12,
		GSTBusinessDomestic:      12,
		GSTBusinessInternational: 18,
	}
}

func TestFlightEconomyNoCoupon(t *testing.T) {
	b, err := fare.Compute(domesticFlight(), 2, types.CLASS_ECONOMY, nil)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, b.Base)
	assert.Equal(t, 0.0, b.Fees)
	assert.Equal(t, 500.0, b.GST)
	assert.Equal(t, 0.0, b.Discount)
	assert.Equal(t, 10500.0, b.Total)
}

func TestFlightPercentageCouponAll(t *testing.T) {
	c := &fare.Coupon{Code: "SAVE10", Type: types.DISCOUNT_PERCENTAGE, Value: 10, Scope: types.SCOPE_ALL, Active: true}
	b, err := fare.Compute(domesticFlight(), 2, types.CLASS_ECONOMY, c)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, b.Discount)
	assert.Equal(t, 9500.0, b.Total)
}

func TestBusFeesAndGST(t *testing.T) {
	bus := &models.Bus{Price: 300, CleanlinessFee: 50, MaintenanceFee: 30, HygieneFee: 20, GST: 5}
	b, err := fare.Compute(bus, 1, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 300.0, b.Base)
	assert.Equal(t, 100.0, b.Fees)
	assert.Equal(t, 20.0, b.GST)
	assert.Equal(t, 420.0, b.Total)
}

func TestBusIgnoresClass(t *testing.T) {
	bus := &models.Bus{Price: 300, GST: 5}
	economy, err := fare.Compute(bus, 2, types.CLASS_ECONOMY, nil)
	require.NoError(t, err)
	business, err := fare.Compute(bus, 2, types.CLASS_BUSINESS, nil)
	require.NoError(t, err)
	assert.Equal(t, economy, business)
}

func TestFlightGSTMatrix(t *testing.T) {
	cases := []struct {
		name       string
		flightType types.FlightType
		class      types.TravelClass
		rate       float64
	}{
		{"economy domestic", types.FLIGHT_DOMESTIC, types.CLASS_ECONOMY, 5},
		{"economy international", types.FLIGHT_INTERNATIONAL, types.CLASS_ECONOMY, 12},
		{"business domestic", types.FLIGHT_DOMESTIC, types.CLASS_BUSINESS, 12},
		{"business international", types.FLIGHT_INTERNATIONAL, types.CLASS_BUSINESS, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := domesticFlight()
			f.FlightType = tc.flightType
			b, err := fare.Compute(f, 1, tc.class, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.rate, b.GSTRate)
			assert.Equal(t, b.Base*tc.rate/100, b.GST)
		})
	}
}

func TestMissingFieldsDefaultToZero(t *testing.T) {
	b, err := fare.Compute(&models.Flight{}, 3, types.CLASS_BUSINESS, nil)
	require.NoError(t, err)
	assert.Equal(t, fare.Breakdown{}, b)
}

func TestInvalidPassengerCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := fare.Compute(domesticFlight(), n, types.CLASS_ECONOMY, nil)
		assert.ErrorIs(t, err, fare.ErrInvalidPassengerCount)
	}
}

func TestCouponScopeMismatch(t *testing.T) {
	c := &fare.Coupon{Code: "BUS50", Type: types.DISCOUNT_FIXED, Value: 50, Scope: types.SCOPE_BUSES, Active: true}
	_, err := fare.Compute(domesticFlight(), 1, types.CLASS_ECONOMY, c)
	assert.ErrorIs(t, err, fare.ErrCouponScope)

	b, err := fare.Compute(&models.Bus{Price: 300}, 1, "", c)
	require.NoError(t, err)
	assert.Equal(t, 50.0, b.Discount)
	assert.Equal(t, 250.0, b.Total)
}

func TestPercentageAbove100Rejected(t *testing.T) {
	c := &fare.Coupon{Code: "TOOMUCH", Type: types.DISCOUNT_PERCENTAGE, Value: 101, Scope: types.SCOPE_ALL, Active: true}
	_, err := fare.Compute(domesticFlight(), 1, types.CLASS_ECONOMY, c)
	assert.ErrorIs(t, err, fare.ErrInvalidCoupon)
}

func TestInactiveCouponRejected(t *testing.T) {
	c := &fare.Coupon{Code: "OLD", Type: types.DISCOUNT_FIXED, Value: 10, Scope: types.SCOPE_ALL}
	_, err := fare.Compute(domesticFlight(), 1, types.CLASS_ECONOMY, c)
	assert.ErrorIs(t, err, fare.ErrCouponInactive)
}

func TestFixedCouponClampsTotal(t *testing.T) {
	c := &fare.Coupon{Code: "BIG", Type: types.DISCOUNT_FIXED, Value: 50000, Scope: types.SCOPE_FLIGHTS, Active: true}
	b, err := fare.Compute(domesticFlight(), 2, types.CLASS_ECONOMY, c)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, b.Discount)
	assert.Equal(t, 0.0, b.Total)
}

func TestPercentageDiscountIsBaseShare(t *testing.T) {
	for _, v := range []float64{0, 5, 12.5, 50, 100} {
		c := fare.Coupon{Type: types.DISCOUNT_PERCENTAGE, Value: v, Scope: types.SCOPE_ALL, Active: true}
		d, err := fare.Discount(c, types.KIND_FLIGHT, 8000)
		require.NoError(t, err)
		assert.Equal(t, 8000*v/100, d)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	c := &fare.Coupon{Type: types.DISCOUNT_PERCENTAGE, Value: 7, Scope: types.SCOPE_ALL, Active: true}
	first, err := fare.Compute(domesticFlight(), 4, types.CLASS_BUSINESS, c)
	require.NoError(t, err)
	for range 10 {
		again, err := fare.Compute(domesticFlight(), 4, types.CLASS_BUSINESS, c)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
