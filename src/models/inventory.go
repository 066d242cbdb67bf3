package models

import (
	"travelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Flight struct {
	ID                       string           `gorm:"primaryKey;size:36" json:"id"`
	Airline                  string           `json:"airline"`
	FlightNumber             string           `gorm:"index" json:"flightNumber"`
	Origin                   string           `gorm:"index" json:"origin"`
	Destination              string           `gorm:"index" json:"destination"`
	Date                     string           `gorm:"index;size:10" json:"date"`
	DepartureTime            string           `json:"departureTime"`
	ArrivalTime              string           `json:"arrivalTime,omitempty"`
	FlightType               types.FlightType `gorm:"default:'domestic'" json:"flightType"`
	EconomyPrice             float64          `json:"economyPrice"`
	BusinessPrice            float64          `json:"businessPrice"`
	GSTEconomyDomestic       float64          `json:"gstEconomyDomestic"`
	GSTEconomyInternational  float64          `json:"gstEconomyInternational"`
	GSTBusinessDomestic      float64          `json:"gstBusinessDomestic"`
	GSTBusinessInternational float64          `json:"gstBusinessInternational"`
	SeatsAvailable           int              `gorm:"not null;default:0;check:seats_available >= 0" json:"seatsAvailable"`

	types.Timestamps
}

func (f *Flight) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func (f *Flight) Kind() types.BookingKind {
	return types.KIND_FLIGHT
}

func (f *Flight) UnitPrice(class types.TravelClass) float64 {
	if class == types.CLASS_BUSINESS {
		return f.BusinessPrice
	}
	return f.EconomyPrice
}

// GSTRate picks one of the four configured rates by class and flight type.
func (f *Flight) GSTRate(class types.TravelClass) float64 {
	international := f.FlightType == types.FLIGHT_INTERNATIONAL
	switch {
	case class == types.CLASS_BUSINESS && international:
		return f.GSTBusinessInternational
	case class == types.CLASS_BUSINESS:
		return f.GSTBusinessDomestic
	case international:
		return f.GSTEconomyInternational
	default:
		return f.GSTEconomyDomestic
	}
}

func (f *Flight) PerPassengerFees() float64 {
	return 0
}

func (f *Flight) Carrier() string {
	return f.Airline
}

func (f *Flight) ServiceNumber() string {
	return f.FlightNumber
}

func (f *Flight) Trip() Trip {
	return Trip{Origin: f.Origin, Destination: f.Destination, Date: f.Date, DepartureTime: f.DepartureTime}
}

type Bus struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`
	Operator       string  `json:"operator"`
	BusNumber      string  `gorm:"index" json:"busNumber"`
	Origin         string  `gorm:"index" json:"origin"`
	Destination    string  `gorm:"index" json:"destination"`
	Date           string  `gorm:"index;size:10" json:"date"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime,omitempty"`
	Price          float64 `json:"price"`
	GST            float64 `gorm:"column:gst_rate" json:"gstRate"`
	CleanlinessFee float64 `json:"cleanlinessFee"`
	MaintenanceFee float64 `json:"maintenanceFee"`
	HygieneFee     float64 `json:"hygieneFee"`
	SeatsAvailable int     `gorm:"not null;default:0;check:seats_available >= 0" json:"seatsAvailable"`

	types.Timestamps
}

func (b *Bus) TableName() string {
	return "buses"
}

func (b *Bus) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Bus) Kind() types.BookingKind {
	return types.KIND_BUS
}

func (b *Bus) UnitPrice(types.TravelClass) float64 {
	return b.Price
}

func (b *Bus) GSTRate(types.TravelClass) float64 {
	return b.GST
}

func (b *Bus) PerPassengerFees() float64 {
	return b.CleanlinessFee + b.MaintenanceFee + b.HygieneFee
}

func (b *Bus) Carrier() string {
	return b.Operator
}

func (b *Bus) ServiceNumber() string {
	return b.BusNumber
}

func (b *Bus) Trip() Trip {
	return Trip{Origin: b.Origin, Destination: b.Destination, Date: b.Date, DepartureTime: b.DepartureTime}
}

type Trip struct {
	Origin        string
	Destination   string
	Date          string
	DepartureTime string
}

// InventoryItem is a bookable flight or bus.
type InventoryItem interface {
	Kind() types.BookingKind
	UnitPrice(class types.TravelClass) float64
	GSTRate(class types.TravelClass) float64
	PerPassengerFees() float64
	Carrier() string
	ServiceNumber() string
	Trip() Trip
}

var (
	_ InventoryItem = (*Flight)(nil)
	_ InventoryItem = (*Bus)(nil)
)

// ModelFor returns an empty model of the given kind, for table scoped queries.
func ModelFor(kind types.BookingKind) any {
	if kind == types.KIND_BUS {
		return &Bus{}
	}
	return &Flight{}
}
