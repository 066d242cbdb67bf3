package models

import (
	"time"

	"travelbook/src/fare"
	"travelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID            string               `gorm:"primaryKey;size:36" json:"id"`
	TicketCode    string               `gorm:"uniqueIndex;size:6" json:"ticketCode"`
	UserID        string               `gorm:"index" json:"userId"`
	Kind          types.BookingKind    `gorm:"index" json:"kind"`
	ItemID        string               `gorm:"index" json:"itemId"`
	Class         types.TravelClass    `json:"class,omitempty"`
	Carrier       string               `json:"carrier,omitempty"`
	ServiceNumber string               `json:"serviceNumber,omitempty"`
	Origin        string               `json:"origin"`
	Destination   string               `json:"destination"`
	Date          string               `gorm:"index;size:10" json:"date"`
	DepartureTime string               `json:"departureTime,omitempty"`
	Passengers    types.PassengerSeats `gorm:"type:jsonb" json:"passengers"`
	CouponCode    *string              `json:"couponCode,omitempty"`
	Fare          fare.Breakdown       `gorm:"embedded;embeddedPrefix:fare_" json:"fare"`
	Status        types.BookingStatus  `gorm:"index;default:'active'" json:"status"`
	ContactEmail  string               `json:"contactEmail"`
	ContactPhone  string               `json:"contactPhone,omitempty"`
	CheckedInAt   *time.Time           `json:"checkedInAt,omitempty"`
	CanceledAt    *time.Time           `json:"canceledAt,omitempty"`

	types.Timestamps
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = types.BOOKING_ACTIVE
	}
	return nil
}

// Departed reports whether the travel date lies before the calendar day of now.
func (b *Booking) Departed(now time.Time) bool {
	date, err := time.ParseInLocation(types.DATE_FORMAT, b.Date, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return date.Before(today)
}

// EffectiveStatus derives `completed` for bookings whose date has passed. Canceled bookings keep their status.
func (b *Booking) EffectiveStatus(now time.Time) types.BookingStatus {
	if b.Status.Canceled() {
		return b.Status
	}
	if b.Departed(now) {
		return types.BOOKING_COMPLETED
	}
	return b.Status
}

// WithEffectiveStatus returns a copy whose Status is the derived one, for responses.
func (b Booking) WithEffectiveStatus(now time.Time) Booking {
	b.Status = b.EffectiveStatus(now)
	return b
}
