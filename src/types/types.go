package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func scanBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, errors.New("type assertion to []byte failed")
}

type BookingKind string

const (
	KIND_FLIGHT BookingKind = "flight"
	KIND_BUS    BookingKind = "bus"
)

func (k BookingKind) Valid() bool {
	return k == KIND_FLIGHT || k == KIND_BUS
}

type TravelClass string

const (
	CLASS_ECONOMY  TravelClass = "economy"
	CLASS_BUSINESS TravelClass = "business"
)

func (c TravelClass) Valid() bool {
	return c == CLASS_ECONOMY || c == CLASS_BUSINESS
}

type FlightType string

const (
	FLIGHT_DOMESTIC      FlightType = "domestic"
	FLIGHT_INTERNATIONAL FlightType = "international"
)

type DiscountType string

const (
	DISCOUNT_PERCENTAGE DiscountType = "percentage"
	DISCOUNT_FIXED      DiscountType = "fixed"
)

type CouponScope string

const (
	SCOPE_ALL     CouponScope = "all"
	SCOPE_FLIGHTS CouponScope = "flights"
	SCOPE_BUSES   CouponScope = "buses"
)

// Matches reports whether a coupon with this scope may be applied to a booking of kind k.
func (s CouponScope) Matches(k BookingKind) bool {
	switch s {
	case SCOPE_ALL:
		return true
	case SCOPE_FLIGHTS:
		return k == KIND_FLIGHT
	case SCOPE_BUSES:
		return k == KIND_BUS
	}
	return false
}

type BookingStatus string

const (
	BOOKING_ACTIVE            BookingStatus = "active"
	BOOKING_CHECKED_IN        BookingStatus = "checked-in"
	BOOKING_CANCELED_BY_USER  BookingStatus = "canceled_by_user"
	BOOKING_CANCELED_BY_ADMIN BookingStatus = "canceled_by_admin"
	BOOKING_COMPLETED         BookingStatus = "completed"
)

func (s BookingStatus) Canceled() bool {
	return s == BOOKING_CANCELED_BY_USER || s == BOOKING_CANCELED_BY_ADMIN
}

const DATE_FORMAT = "2006-01-02"

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type SearchQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
	Date string `form:"date" binding:"required,traveldate"`
}

type Passport struct {
	Number string `json:"number" binding:"required"`
	Expiry string `json:"expiry" binding:"required,traveldate"`
}

type Passenger struct {
	Name        string    `json:"name" binding:"required"`
	Gender      string    `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth string    `json:"dob" binding:"required"`
	Passport    *Passport `json:"passport,omitempty" binding:"omitempty"`
}

// PassengerSeat pairs a passenger with the seat they occupy.
type PassengerSeat struct {
	Passenger Passenger `json:"passenger" binding:"required"`
	Seat      string    `json:"seat" binding:"required"`
}

type PassengerSeats []PassengerSeat

func (a PassengerSeats) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *PassengerSeats) Scan(value any) error {
	b, err := scanBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, a)
}

func (a PassengerSeats) Seats() []string {
	seats := make([]string, 0, len(a))
	for _, ps := range a {
		seats = append(seats, ps.Seat)
	}
	return seats
}

type CreateBookingRequestBody struct {
	Kind         BookingKind     `json:"kind" binding:"required,oneof=flight bus"`
	ItemID       string          `json:"itemId" binding:"required"`
	Class        TravelClass     `json:"class,omitempty" binding:"omitempty,oneof=economy business"`
	Passengers   []PassengerSeat `json:"passengers" binding:"required,min=1,dive"`
	CouponCode   string          `json:"couponCode,omitempty" binding:"omitempty,couponcode"`
	ContactEmail string          `json:"contactEmail" binding:"required,email"`
	ContactPhone string          `json:"contactPhone,omitempty"`
}

type EditBookingRequestBody struct {
	Passengers   []PassengerSeat `json:"passengers" binding:"required,min=1,dive"`
	ContactEmail string          `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone string          `json:"contactPhone,omitempty"`
}

type FareQuoteRequestBody struct {
	Kind           BookingKind `json:"kind" binding:"required,oneof=flight bus"`
	ItemID         string      `json:"itemId" binding:"required"`
	Class          TravelClass `json:"class,omitempty" binding:"omitempty,oneof=economy business"`
	PassengerCount int         `json:"passengerCount" binding:"required,min=1"`
	CouponCode     string      `json:"couponCode,omitempty" binding:"omitempty,couponcode"`
}

type CreateFlightRequestBody struct {
	Airline                  string     `json:"airline" binding:"required"`
	FlightNumber             string     `json:"flightNumber" binding:"required"`
	Origin                   string     `json:"origin" binding:"required"`
	Destination              string     `json:"destination" binding:"required"`
	Date                     string     `json:"date" binding:"required,traveldate"`
	DepartureTime            string     `json:"departureTime" binding:"required"`
	ArrivalTime              string     `json:"arrivalTime,omitempty"`
	FlightType               FlightType `json:"flightType" binding:"required,oneof=domestic international"`
	EconomyPrice             float64    `json:"economyPrice" binding:"gte=0"`
	BusinessPrice            float64    `json:"businessPrice" binding:"gte=0"`
	GSTEconomyDomestic       float64    `json:"gstEconomyDomestic" binding:"gte=0"`
	GSTEconomyInternational  float64    `json:"gstEconomyInternational" binding:"gte=0"`
	GSTBusinessDomestic      float64    `json:"gstBusinessDomestic" binding:"gte=0"`
	GSTBusinessInternational float64    `json:"gstBusinessInternational" binding:"gte=0"`
	SeatsAvailable           int        `json:"seatsAvailable" binding:"gte=0"`
}

type CreateBusRequestBody struct {
	Operator       string  `json:"operator" binding:"required"`
	BusNumber      string  `json:"busNumber" binding:"required"`
	Origin         string  `json:"origin" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	Date           string  `json:"date" binding:"required,traveldate"`
	DepartureTime  string  `json:"departureTime" binding:"required"`
	ArrivalTime    string  `json:"arrivalTime,omitempty"`
	Price          float64 `json:"price" binding:"gte=0"`
	GSTRate        float64 `json:"gstRate" binding:"gte=0"`
	CleanlinessFee float64 `json:"cleanlinessFee" binding:"gte=0"`
	MaintenanceFee float64 `json:"maintenanceFee" binding:"gte=0"`
	HygieneFee     float64 `json:"hygieneFee" binding:"gte=0"`
	SeatsAvailable int     `json:"seatsAvailable" binding:"gte=0"`
}

type CreateCouponRequestBody struct {
	Code          string       `json:"code" binding:"required,couponcode"`
	DiscountType  DiscountType `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue float64      `json:"discountValue" binding:"gt=0"`
	ApplicableTo  CouponScope  `json:"applicableTo" binding:"required,oneof=all flights buses"`
	Active        *bool        `json:"active,omitempty"`
	Description   string       `json:"description,omitempty"`
}

type CreateBannerRequestBody struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required,url"`
	Link     string `json:"link,omitempty"`
	Position int    `json:"position,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

type UpdateUserRequestBody struct {
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
	Disabled *bool  `json:"disabled,omitempty"`
}

type SyncUserRequestBody struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type AdminLoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CheckInRequestBody struct {
	TicketCode string `json:"ticketCode" binding:"required"`
}

type SendOTPRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type SendConfirmationRequestBody struct {
	BookingID string `json:"bookingId" binding:"required"`
}

type SendNotificationRequestBody struct {
	To      []string `json:"to" binding:"required,min=1,dive,email"`
	Subject string   `json:"subject" binding:"required"`
	Message string   `json:"message" binding:"required"`
}

type BookingsQueryFilters struct {
	Status string `form:"status" binding:"omitempty"`
	Kind   string `form:"kind" binding:"omitempty,oneof=flight bus"`
}

type TicketDownloadQuery struct {
	ShareLink bool `form:"share_link"`
}
