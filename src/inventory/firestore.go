package inventory

import (
	"context"
	"fmt"

	"travelbook/src/types"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const seatsField = "seatsAvailable"

// FirestoreStore keeps counters in the flights/{id} and buses/{id} documents.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func collection(kind types.BookingKind) string {
	if kind == types.KIND_BUS {
		return "buses"
	}
	return "flights"
}

func (s *FirestoreStore) doc(kind types.BookingKind, id string) *firestore.DocumentRef {
	return s.client.Collection(collection(kind)).Doc(id)
}

// Reserve runs in a Firestore transaction. Write conflicts are retried by the SDK;
// errors returned from the callback abort the transaction without retry.
func (s *FirestoreStore) Reserve(ctx context.Context, kind types.BookingKind, id string, n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	ref := s.doc(kind, id)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
			}
			return err
		}
		current := seatsOf(snap)
		if current < int64(n) {
			return fmt.Errorf("%w: %s %s", ErrInsufficientSeats, kind, id)
		}
		return tx.Update(ref, []firestore.Update{{Path: seatsField, Value: current - int64(n)}})
	})
}

func (s *FirestoreStore) Release(ctx context.Context, kind types.BookingKind, id string, n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	_, err := s.doc(kind, id).Update(ctx, []firestore.Update{{Path: seatsField, Value: firestore.Increment(n)}})
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return err
}

func (s *FirestoreStore) Available(ctx context.Context, kind types.BookingKind, id string) (int, error) {
	snap, err := s.doc(kind, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
		}
		return 0, err
	}
	return int(seatsOf(snap)), nil
}

func (s *FirestoreStore) Seed(ctx context.Context, kind types.BookingKind, id string, seats int) error {
	_, err := s.doc(kind, id).Set(ctx, map[string]any{seatsField: seats}, firestore.MergeAll)
	return err
}

// seatsOf treats a missing or non-numeric field as zero seats.
func seatsOf(snap *firestore.DocumentSnapshot) int64 {
	v, err := snap.DataAt(seatsField)
	if err != nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}
