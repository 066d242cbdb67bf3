package common

import (
	"context"
	"errors"

	"travelbook/src/booking"
	"travelbook/src/models"
	"travelbook/src/types"

	"gorm.io/gorm"
)

// Bookings is the gorm-backed booking.Repository.
type Bookings struct {
	db *gorm.DB
}

func NewBookings(db *gorm.DB) *Bookings {
	return &Bookings{db: db}
}

func (r *Bookings) Insert(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Save writes the mutable columns only. Fare, seats and the item never change after creation.
func (r *Bookings) Save(ctx context.Context, b *models.Booking) error {
	return r.db.
		WithContext(ctx).
		Model(b).
		Select("passengers", "contact_email", "contact_phone", "status", "checked_in_at", "canceled_at").
		Updates(b).
		Error
}

func (r *Bookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&b).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Bookings) FindByTicketCode(ctx context.Context, code string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.
		WithContext(ctx).
		Where("ticket_code = ?", code).
		First(&b).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// TicketCodeExists also counts soft-deleted rows, which the unique index still covers.
func (r *Bookings) TicketCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.
		WithContext(ctx).
		Unscoped().
		Model(&models.Booking{}).
		Where("ticket_code = ?", code).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Bookings) List(ctx context.Context, f booking.Filter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *Bookings) HeldSeats(ctx context.Context, kind types.BookingKind, itemID string) ([]string, error) {
	var rows []models.Booking
	err := r.db.
		WithContext(ctx).
		Select("passengers").
		Where("kind = ? AND item_id = ? AND status IN ?", kind, itemID, []types.BookingStatus{types.BOOKING_ACTIVE, types.BOOKING_CHECKED_IN}).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	var seats []string
	for _, b := range rows {
		seats = append(seats, b.Passengers.Seats()...)
	}
	return seats, nil
}
