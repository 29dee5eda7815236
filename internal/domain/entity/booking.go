package entity

import (
	"time"

	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
)

// Booking links a customer and a vehicle to a set of line items for a service
// visit. Dates are stored as ISO YYYY-MM-DD strings. A booking is created
// directly into the booked state; cancellation is its only mutation.
type Booking struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	CustomerID  uint               `gorm:"not null;index" json:"customer_id"`
	VehicleID   uint               `gorm:"not null;index" json:"vehicle_id"`
	BookingDate string             `gorm:"size:10;not null" json:"booking_date"`
	Notes       string             `gorm:"type:text" json:"notes"`
	Status      enum.BookingStatus `gorm:"size:20;not null;default:booked" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`

	// Relationships
	Customer  Customer      `gorm:"foreignKey:CustomerID" json:"-"`
	Vehicle   Vehicle       `gorm:"foreignKey:VehicleID" json:"-"`
	Items     []BookingItem `gorm:"foreignKey:BookingID" json:"items,omitempty"`
	MiscItems []MiscItem    `gorm:"foreignKey:BookingID" json:"misc_items,omitempty"`
	Invoice   *Invoice      `gorm:"foreignKey:BookingID" json:"invoice,omitempty"`
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BookingItem is a catalog service attached to a booking. Unit price and VAT
// rate are copied from the service at booking time so historical invoices are
// untouched by later catalog edits.
type BookingItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	VATRate   float64 `gorm:"not null;column:vat_rate" json:"vat_rate"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// TableName returns the table name for the BookingItem model
func (BookingItem) TableName() string {
	return "booking_items"
}

// MiscItem is a free-form part or charge on a booking for anything not in the
// service catalog.
type MiscItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	VATRate   float64 `gorm:"not null;column:vat_rate" json:"vat_rate"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

// TableName returns the table name for the MiscItem model
func (MiscItem) TableName() string {
	return "misc_items"
}
