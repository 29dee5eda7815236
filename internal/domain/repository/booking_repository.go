package repository

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
)

// BookingSubmission is everything created by one booking form submission.
// Invoice is nil when the line items did not sum to a positive ex-VAT total.
type BookingSubmission struct {
	Customer  *entity.Customer
	Vehicle   *entity.Vehicle
	Booking   *entity.Booking
	Items     []entity.BookingItem
	MiscItems []entity.MiscItem
	Invoice   *entity.Invoice
}

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// CreateSubmission persists a whole submission atomically: the store must
	// never hold an invoice or line items without their booking.
	CreateSubmission(ctx context.Context, sub *BookingSubmission) error
	List(ctx context.Context) ([]entity.Booking, error)
	// Cancel sets the booking and its invoice (if any) to canceled in one
	// transaction. Line items and totals are left untouched.
	Cancel(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
