package entity

import (
	"time"

	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
)

// Invoice holds the computed totals for a booking. At most one invoice exists
// per booking, and only when the booking's line items sum to a positive ex-VAT
// total. Stored totals are the exact unrounded sums; formatting to two decimal
// places happens only at render time.
type Invoice struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	BookingID     uint               `gorm:"not null;index" json:"booking_id"`
	InvoiceNumber string             `gorm:"size:32;uniqueIndex;not null" json:"invoice_number"`
	IssueDate     string             `gorm:"size:10;not null" json:"issue_date"`
	TotalExVAT    float64            `gorm:"not null;column:total_ex_vat" json:"total_ex_vat"`
	TotalVAT      float64            `gorm:"not null;column:total_vat" json:"total_vat"`
	TotalInc      float64            `gorm:"not null;column:total_inc" json:"total_inc"`
	Status        enum.InvoiceStatus `gorm:"size:20;not null;default:unpaid" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
