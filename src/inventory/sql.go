package inventory

import (
	"context"
	"fmt"

	"travelbook/src/models"
	"travelbook/src/types"

	"gorm.io/gorm"
)

type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Reserve(ctx context.Context, kind types.BookingKind, id string, n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(models.ModelFor(kind)).
			Where("id = ? AND seats_available >= ?", id, n).
			UpdateColumn("seats_available", gorm.Expr("seats_available - ?", n))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		var count int64
		if err := tx.
			Model(models.ModelFor(kind)).
			Where("id = ?", id).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
		}
		return fmt.Errorf("%w: %s %s", ErrInsufficientSeats, kind, id)
	})
}

func (s *SQLStore) Release(ctx context.Context, kind types.BookingKind, id string, n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	res := s.db.
		WithContext(ctx).
		Model(models.ModelFor(kind)).
		Where("id = ?", id).
		UpdateColumn("seats_available", gorm.Expr("seats_available + ?", n))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return nil
}

func (s *SQLStore) Available(ctx context.Context, kind types.BookingKind, id string) (int, error) {
	var seats []int
	if err := s.db.
		WithContext(ctx).
		Model(models.ModelFor(kind)).
		Where("id = ?", id).
		Pluck("seats_available", &seats).
		Error; err != nil {
		return 0, err
	}
	if len(seats) == 0 {
		return 0, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return seats[0], nil
}

// Seed is a no-op beyond keeping the column in sync; the catalog row already holds the counter.
func (s *SQLStore) Seed(ctx context.Context, kind types.BookingKind, id string, seats int) error {
	return s.db.
		WithContext(ctx).
		Model(models.ModelFor(kind)).
		Where("id = ?", id).
		UpdateColumn("seats_available", seats).
		Error
}
