// Package inventory guards the seatsAvailable counter of flights and buses.
package inventory

import (
	"context"
	"errors"

	"travelbook/src/types"
)

var (
	ErrNotFound          = errors.New("inventory item not found")
	ErrInsufficientSeats = errors.New("not enough seats")
	ErrInvalidQuantity   = errors.New("seat quantity must be at least 1")
)

// Store implementations must make Reserve atomic: either the whole quantity is taken
// or the counter is left untouched.
type Store interface {
	Reserve(ctx context.Context, kind types.BookingKind, id string, n int) error
	Release(ctx context.Context, kind types.BookingKind, id string, n int) error
	Available(ctx context.Context, kind types.BookingKind, id string) (int, error)
	Seed(ctx context.Context, kind types.BookingKind, id string, seats int) error
}

const (
	BACKEND_SQL       = "sql"
	BACKEND_FIRESTORE = "firestore"
)
