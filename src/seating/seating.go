package seating

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travelbook/src/types"
)

// Rows 1-3 of every aircraft are business class.
var businessRows = map[int]struct{}{1: {}, 2: {}, 3: {}}

var (
	ErrInvalidSeat   = errors.New("invalid seat")
	ErrDuplicateSeat = errors.New("seat selected more than once")
	ErrClassMismatch = errors.New("seat does not match travel class")
)

var flightSeatPattern = regexp.MustCompile(`^([1-9][0-9]?)([A-K])$`)

type MismatchError struct {
	Seat     string
	Expected types.TravelClass
	Actual   types.TravelClass
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("seat %s is %s class, expected %s", e.Seat, e.Actual, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrClassMismatch
}

func Normalize(seat string) string {
	return strings.ToUpper(strings.TrimSpace(seat))
}

// FlightRow parses the row number out of a seat label such as "12C".
func FlightRow(seat string) (int, error) {
	m := flightSeatPattern.FindStringSubmatch(Normalize(seat))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeat, seat)
	}
	return strconv.Atoi(m[1])
}

func ClassForSeat(seat string) (types.TravelClass, error) {
	row, err := FlightRow(seat)
	if err != nil {
		return "", err
	}
	if _, ok := businessRows[row]; ok {
		return types.CLASS_BUSINESS, nil
	}
	return types.CLASS_ECONOMY, nil
}

// ValidateFlightSeats rejects the whole selection if any seat is malformed, repeated or
// belongs to a class other than class.
func ValidateFlightSeats(class types.TravelClass, seats []string) error {
	if !class.Valid() {
		return fmt.Errorf("%w: unknown travel class %q", ErrClassMismatch, class)
	}
	if err := checkUnique(seats); err != nil {
		return err
	}
	for _, seat := range seats {
		actual, err := ClassForSeat(seat)
		if err != nil {
			return err
		}
		if actual != class {
			return &MismatchError{Seat: Normalize(seat), Expected: class, Actual: actual}
		}
	}
	return nil
}

func ValidateBusSeats(seats []string) error {
	return checkUnique(seats)
}

func checkUnique(seats []string) error {
	seen := make(map[string]struct{}, len(seats))
	for _, seat := range seats {
		s := Normalize(seat)
		if s == "" {
			return fmt.Errorf("%w: empty seat", ErrInvalidSeat)
		}
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSeat, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}
