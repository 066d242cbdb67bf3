// Package fare turns an inventory item, a passenger count, a travel class and an
// optional coupon into a price breakdown.
package fare

import (
	"errors"
	"fmt"
	"math"

	"travelbook/src/types"
)

var (
	ErrInvalidPassengerCount = errors.New("passenger count must be at least 1")
	ErrCouponScope           = errors.New("coupon is not applicable to this booking type")
	ErrCouponInactive        = errors.New("coupon is not active")
	ErrInvalidCoupon         = errors.New("invalid coupon discount")
)

type Item interface {
	Kind() types.BookingKind
	UnitPrice(class types.TravelClass) float64
	GSTRate(class types.TravelClass) float64
	PerPassengerFees() float64
}

type Coupon struct {
	Code   string
	Type   types.DiscountType
	Value  float64
	Scope  types.CouponScope
	Active bool
}

type Breakdown struct {
	Base     float64 `json:"base"`
	Fees     float64 `json:"fees"`
	GSTRate  float64 `json:"gstRate"`
	GST      float64 `json:"gst"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Compute returns the fare for passengers travellers. Missing prices and rates count as zero.
func Compute(item Item, passengers int, class types.TravelClass, coupon *Coupon) (Breakdown, error) {
	if passengers <= 0 {
		return Breakdown{}, ErrInvalidPassengerCount
	}
	count := float64(passengers)
	base := round(nonNegative(item.UnitPrice(class)) * count)
	fees := round(nonNegative(item.PerPassengerFees()) * count)
	rate := nonNegative(item.GSTRate(class))
	gst := round((base + fees) * rate / 100)

	var discount float64
	if coupon != nil {
		d, err := Discount(*coupon, item.Kind(), base)
		if err != nil {
			return Breakdown{}, err
		}
		discount = d
	}

	total := round(math.Max(0, base+fees+gst-discount))
	return Breakdown{
		Base:     base,
		Fees:     fees,
		GSTRate:  rate,
		GST:      gst,
		Discount: discount,
		Total:    total,
	}, nil
}

// Discount validates c against a booking of the given kind and returns the amount it takes off base.
func Discount(c Coupon, kind types.BookingKind, base float64) (float64, error) {
	if !c.Active {
		return 0, ErrCouponInactive
	}
	if !c.Scope.Matches(kind) {
		return 0, fmt.Errorf("%w: %s coupon on a %s booking", ErrCouponScope, c.Scope, kind)
	}
	if c.Value < 0 {
		return 0, fmt.Errorf("%w: negative value", ErrInvalidCoupon)
	}
	switch c.Type {
	case types.DISCOUNT_PERCENTAGE:
		if c.Value > 100 {
			return 0, fmt.Errorf("%w: percentage above 100", ErrInvalidCoupon)
		}
		return round(base * c.Value / 100), nil
	case types.DISCOUNT_FIXED:
		return round(c.Value), nil
	}
	return 0, fmt.Errorf("%w: unknown discount type %q", ErrInvalidCoupon, c.Type)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
