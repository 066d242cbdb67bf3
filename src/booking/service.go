// Package booking runs the booking lifecycle: create, edit, cancel and check-in.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"travelbook/src/fare"
	"travelbook/src/inventory"
	"travelbook/src/models"
	"travelbook/src/types"
)

var (
	ErrNotFound            = errors.New("booking not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrForbidden           = errors.New("booking belongs to another user")
	ErrInvalidRequest      = errors.New("invalid booking request")
	ErrInvalidTransition   = errors.New("booking cannot change to the requested status")
	ErrDeparted            = errors.New("travel date has passed")
	ErrTicketCodeExhausted = errors.New("could not allocate a unique ticket code")
	ErrSeatTaken           = errors.New("seat already booked")
)

type Filter struct {
	UserID string
	Status types.BookingStatus
	Kind   types.BookingKind
}

type Repository interface {
	Insert(ctx context.Context, b *models.Booking) error
	Save(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	FindByTicketCode(ctx context.Context, code string) (*models.Booking, error)
	TicketCodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, f Filter) ([]models.Booking, error)
	// HeldSeats lists the seats of every active or checked-in booking on the item.
	HeldSeats(ctx context.Context, kind types.BookingKind, itemID string) ([]string, error)
}

// Catalog resolves the bookable item and coupon. Missing rows map to ErrItemNotFound
// and fare.ErrInvalidCoupon.
type Catalog interface {
	Item(ctx context.Context, kind types.BookingKind, id string) (models.InventoryItem, error)
	Coupon(ctx context.Context, code string) (*models.Coupon, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
}

type Service struct {
	repo     Repository
	catalog  Catalog
	store    inventory.Store
	notifier Notifier

	now   func() time.Time
	codes func() (string, error)
	locks itemLocks
}

// itemLocks serializes seat checks and inserts per item within this process.
type itemLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *itemLocks) lock(kind types.BookingKind, id string) func() {
	key := string(kind) + ":" + id
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	m, ok := l.m[key]
	if !ok {
		m = &sync.Mutex{}
		l.m[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

func NewService(repo Repository, catalog Catalog, store inventory.Store, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		store:    store,
		notifier: notifier,
		now:      time.Now,
		codes:    randomTicketCode,
	}
}

type Order struct {
	UserID       string
	Request      Request
	CouponCode   string
	ContactEmail string
	ContactPhone string
}

type Result struct {
	Booking models.Booking `json:"booking"`
	Warning string         `json:"warning,omitempty"`
}

// Actor is the caller of an operation on an existing booking.
type Actor struct {
	UserID string
	Admin  bool
}

func (a Actor) owns(b *models.Booking) bool {
	return a.Admin || b.UserID == a.UserID
}

// Quote prices a prospective booking without touching inventory.
func (s *Service) Quote(ctx context.Context, kind types.BookingKind, itemID string, class types.TravelClass, passengers int, couponCode string) (fare.Breakdown, error) {
	item, err := s.catalog.Item(ctx, kind, itemID)
	if err != nil {
		return fare.Breakdown{}, err
	}
	coupon, err := s.coupon(ctx, couponCode)
	if err != nil {
		return fare.Breakdown{}, err
	}
	return fare.Compute(item, passengers, class, coupon)
}

func (s *Service) coupon(ctx context.Context, code string) (*fare.Coupon, error) {
	if code == "" {
		return nil, nil
	}
	c, err := s.catalog.Coupon(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.Terms(), nil
}

// Create validates, prices and persists a booking. Seats are reserved before the insert
// and released again if the insert fails.
func (s *Service) Create(ctx context.Context, order Order) (*Result, error) {
	req := order.Request
	if req == nil {
		return nil, fmt.Errorf("%w: missing request", ErrInvalidRequest)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	item, err := s.catalog.Item(ctx, req.Kind(), req.ItemID())
	if err != nil {
		return nil, err
	}
	trip := item.Trip()
	draft := models.Booking{Date: trip.Date}
	if draft.Departed(s.now()) {
		return nil, ErrDeparted
	}
	unlock := s.locks.lock(req.Kind(), req.ItemID())
	defer unlock()
	if err := s.checkSeatsFree(ctx, req); err != nil {
		return nil, err
	}
	coupon, err := s.coupon(ctx, order.CouponCode)
	if err != nil {
		return nil, err
	}
	pairs := req.Pairs()
	breakdown, err := fare.Compute(item, len(pairs), req.Class(), coupon)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	code, err := s.newTicketCode(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Reserve(ctx, req.Kind(), req.ItemID(), len(pairs)); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		TicketCode:    code,
		UserID:        order.UserID,
		Kind:          req.Kind(),
		ItemID:        req.ItemID(),
		Class:         req.Class(),
		Carrier:       item.Carrier(),
		ServiceNumber: item.ServiceNumber(),
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		Date:          trip.Date,
		DepartureTime: trip.DepartureTime,
		Passengers:    pairs,
		Fare:          breakdown,
		Status:        types.BOOKING_ACTIVE,
		ContactEmail:  order.ContactEmail,
		ContactPhone:  order.ContactPhone,
	}
	if coupon != nil {
		booking.CouponCode = &coupon.Code
	}
	if err := s.repo.Insert(ctx, booking); err != nil {
		if rerr := s.store.Release(ctx, req.Kind(), req.ItemID(), len(pairs)); rerr != nil {
			log.Printf("[Booking] Error releasing %d seats on %s %s: %s\n", len(pairs), req.Kind(), req.ItemID(), rerr.Error())
		}
		return nil, fmt.Errorf("saving booking: %w", err)
	}

	result := &Result{Booking: *booking}
	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, *booking); err != nil {
			log.Printf("[Booking] Error sending confirmation for %s: %s\n", booking.ID, err.Error())
			result.Warning = "booking confirmed but the confirmation email could not be sent"
		}
	}
	return result, nil
}

func (s *Service) checkSeatsFree(ctx context.Context, req Request) error {
	held, err := s.repo.HeldSeats(ctx, req.Kind(), req.ItemID())
	if err != nil {
		return err
	}
	taken := make(map[string]struct{}, len(held))
	for _, seat := range held {
		taken[seat] = struct{}{}
	}
	var clash []string
	for _, seat := range req.Pairs().Seats() {
		if _, ok := taken[seat]; ok {
			clash = append(clash, seat)
		}
	}
	if len(clash) > 0 {
		return fmt.Errorf("%w: %s", ErrSeatTaken, strings.Join(clash, ", "))
	}
	return nil
}

// HeldSeats returns the sorted seats already sold on an item, for seat maps.
func (s *Service) HeldSeats(ctx context.Context, kind types.BookingKind, itemID string) ([]string, error) {
	if _, err := s.catalog.Item(ctx, kind, itemID); err != nil {
		return nil, err
	}
	held, err := s.repo.HeldSeats(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}
	sort.Strings(held)
	if held == nil {
		held = []string{}
	}
	return held, nil
}

func (s *Service) Get(ctx context.Context, actor Actor, id string) (*models.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(b) {
		return nil, ErrForbidden
	}
	view := b.WithEffectiveStatus(s.now())
	return &view, nil
}

// List returns bookings with their effective status. A status filter applies to the
// effective status, so `completed` matches departed bookings.
func (s *Service) List(ctx context.Context, f Filter) ([]models.Booking, error) {
	status := f.Status
	f.Status = ""
	bookings, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		view := b.WithEffectiveStatus(now)
		if status != "" && view.Status != status {
			continue
		}
		out = append(out, view)
	}
	return out, nil
}

// EditPassengers replaces passenger details on an active future booking. The seats
// must stay the same.
func (s *Service) EditPassengers(ctx context.Context, actor Actor, id string, pairs []types.PassengerSeat, email, phone string) (*models.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(b) {
		return nil, ErrForbidden
	}
	if b.EffectiveStatus(s.now()) != types.BOOKING_ACTIVE {
		return nil, fmt.Errorf("%w: %s booking cannot be edited", ErrInvalidTransition, b.EffectiveStatus(s.now()))
	}
	req, err := NewRequest(b.Kind, b.ItemID, b.Class, pairs)
	if err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	if !sameSeats(b.Passengers.Seats(), req.Pairs().Seats()) {
		return nil, fmt.Errorf("%w: seats cannot be changed", ErrInvalidRequest)
	}
	b.Passengers = req.Pairs()
	if email != "" {
		b.ContactEmail = email
	}
	if phone != "" {
		b.ContactPhone = phone
	}
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel moves a booking to a terminal canceled status. Seats are not returned to inventory.
func (s *Service) Cancel(ctx context.Context, actor Actor, id string) (*models.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(b) {
		return nil, ErrForbidden
	}
	current := b.EffectiveStatus(s.now())
	switch {
	case current == types.BOOKING_ACTIVE:
	case current == types.BOOKING_CHECKED_IN && actor.Admin:
	default:
		return nil, fmt.Errorf("%w: %s booking cannot be canceled", ErrInvalidTransition, current)
	}
	now := s.now()
	b.Status = types.BOOKING_CANCELED_BY_USER
	if actor.Admin {
		b.Status = types.BOOKING_CANCELED_BY_ADMIN
	}
	b.CanceledAt = &now
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) CheckIn(ctx context.Context, ticketCode string) (*models.Booking, error) {
	b, err := s.repo.FindByTicketCode(ctx, ticketCode)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if b.Departed(now) {
		return nil, ErrDeparted
	}
	if b.Status != types.BOOKING_ACTIVE {
		return nil, fmt.Errorf("%w: %s booking cannot be checked in", ErrInvalidTransition, b.Status)
	}
	b.Status = types.BOOKING_CHECKED_IN
	b.CheckedInAt = &now
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func sameSeats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}
