package booking

import (
	"fmt"
	"strings"

	"travelbook/src/seating"
	"travelbook/src/types"
)

// Request is either a FlightRequest or a BusRequest.
type Request interface {
	Kind() types.BookingKind
	ItemID() string
	Class() types.TravelClass
	Pairs() types.PassengerSeats
	validate() error
}

type FlightRequest struct {
	FlightID    string
	TravelClass types.TravelClass
	Passengers  types.PassengerSeats
}

func (r FlightRequest) Kind() types.BookingKind     { return types.KIND_FLIGHT }
func (r FlightRequest) ItemID() string              { return r.FlightID }
func (r FlightRequest) Class() types.TravelClass    { return r.TravelClass }
func (r FlightRequest) Pairs() types.PassengerSeats { return r.Passengers }

func (r FlightRequest) validate() error {
	if err := validatePassengers(r.Passengers, true); err != nil {
		return err
	}
	if err := seating.ValidateFlightSeats(r.TravelClass, r.Passengers.Seats()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

type BusRequest struct {
	BusID      string
	Passengers types.PassengerSeats
}

func (r BusRequest) Kind() types.BookingKind     { return types.KIND_BUS }
func (r BusRequest) ItemID() string              { return r.BusID }
func (r BusRequest) Class() types.TravelClass    { return "" }
func (r BusRequest) Pairs() types.PassengerSeats { return r.Passengers }

func (r BusRequest) validate() error {
	if err := validatePassengers(r.Passengers, false); err != nil {
		return err
	}
	if err := seating.ValidateBusSeats(r.Passengers.Seats()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// NewRequest builds the variant for kind. Seats are normalized to upper case.
func NewRequest(kind types.BookingKind, itemID string, class types.TravelClass, pairs []types.PassengerSeat) (Request, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, fmt.Errorf("%w: missing item id", ErrInvalidRequest)
	}
	normalized := make(types.PassengerSeats, len(pairs))
	for i, p := range pairs {
		p.Seat = seating.Normalize(p.Seat)
		normalized[i] = p
	}
	switch kind {
	case types.KIND_FLIGHT:
		if class == "" {
			class = types.CLASS_ECONOMY
		}
		return FlightRequest{FlightID: itemID, TravelClass: class, Passengers: normalized}, nil
	case types.KIND_BUS:
		return BusRequest{BusID: itemID, Passengers: normalized}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, kind)
}

func validatePassengers(pairs types.PassengerSeats, passportRequired bool) error {
	if len(pairs) == 0 {
		return fmt.Errorf("%w: at least one passenger is required", ErrInvalidRequest)
	}
	for i, p := range pairs {
		if strings.TrimSpace(p.Passenger.Name) == "" {
			return fmt.Errorf("%w: passenger %d has no name", ErrInvalidRequest, i+1)
		}
		if p.Passenger.Gender == "" || p.Passenger.DateOfBirth == "" {
			return fmt.Errorf("%w: passenger %d is missing gender or date of birth", ErrInvalidRequest, i+1)
		}
		if !passportRequired {
			continue
		}
		if p.Passenger.Passport == nil || p.Passenger.Passport.Number == "" || p.Passenger.Passport.Expiry == "" {
			return fmt.Errorf("%w: passenger %d needs passport number and expiry", ErrInvalidRequest, i+1)
		}
	}
	return nil
}
