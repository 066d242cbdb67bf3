package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"travelbook/src/booking"
	"travelbook/src/fare"
	"travelbook/src/inventory"
	"travelbook/src/models"
	"travelbook/src/types"

	"gorm.io/gorm"
)

// Catalog reads flights, buses and coupons. When the inventory store is not the
// catalog table itself, seat counts are overlaid from the store.
type Catalog struct {
	db    *gorm.DB
	store inventory.Store
}

func NewCatalog(db *gorm.DB, store inventory.Store) *Catalog {
	return &Catalog{db: db, store: store}
}

func (c *Catalog) Item(ctx context.Context, kind types.BookingKind, id string) (models.InventoryItem, error) {
	switch kind {
	case types.KIND_FLIGHT:
		flight, err := c.Flight(ctx, id)
		if err != nil {
			return nil, err
		}
		return flight, nil
	case types.KIND_BUS:
		bus, err := c.Bus(ctx, id)
		if err != nil {
			return nil, err
		}
		return bus, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", booking.ErrItemNotFound, kind)
}

func (c *Catalog) Flight(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&flight).Error; err != nil {
		return nil, notFound(err, types.KIND_FLIGHT, id)
	}
	flight.SeatsAvailable = c.seats(ctx, types.KIND_FLIGHT, id, flight.SeatsAvailable)
	return &flight, nil
}

func (c *Catalog) Bus(ctx context.Context, id string) (*models.Bus, error) {
	var bus models.Bus
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&bus).Error; err != nil {
		return nil, notFound(err, types.KIND_BUS, id)
	}
	bus.SeatsAvailable = c.seats(ctx, types.KIND_BUS, id, bus.SeatsAvailable)
	return &bus, nil
}

func (c *Catalog) Coupon(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := c.db.
		WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown coupon %s", fare.ErrInvalidCoupon, code)
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func routeQuery(db *gorm.DB, q types.SearchQuery) *gorm.DB {
	return db.
		Where("LOWER(origin) = LOWER(?)", strings.TrimSpace(q.From)).
		Where("LOWER(destination) = LOWER(?)", strings.TrimSpace(q.To)).
		Where("date = ?", q.Date).
		Order("departure_time ASC")
}

func (c *Catalog) SearchFlights(ctx context.Context, q types.SearchQuery) ([]models.Flight, error) {
	var flights []models.Flight
	if err := routeQuery(c.db.WithContext(ctx), q).Find(&flights).Error; err != nil {
		return nil, err
	}
	for i := range flights {
		flights[i].SeatsAvailable = c.seats(ctx, types.KIND_FLIGHT, flights[i].ID, flights[i].SeatsAvailable)
	}
	return flights, nil
}

func (c *Catalog) SearchBuses(ctx context.Context, q types.SearchQuery) ([]models.Bus, error) {
	var buses []models.Bus
	if err := routeQuery(c.db.WithContext(ctx), q).Find(&buses).Error; err != nil {
		return nil, err
	}
	for i := range buses {
		buses[i].SeatsAvailable = c.seats(ctx, types.KIND_BUS, buses[i].ID, buses[i].SeatsAvailable)
	}
	return buses, nil
}

func (c *Catalog) seats(ctx context.Context, kind types.BookingKind, id string, fallback int) int {
	if _, ok := c.store.(*inventory.SQLStore); ok || c.store == nil {
		return fallback
	}
	n, err := c.store.Available(ctx, kind, id)
	if err != nil {
		log.Printf("[Catalog] Error reading availability for %s %s: %s\n", kind, id, err.Error())
		return fallback
	}
	return n
}

func notFound(err error, kind types.BookingKind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", booking.ErrItemNotFound, kind, id)
	}
	return err
}
