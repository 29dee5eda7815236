package repository

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	// GetDetail loads an invoice with its booking, customer, vehicle and line
	// items. Returns nil when the id is unknown.
	GetDetail(ctx context.Context, id uint) (*entity.Invoice, error)
	// List returns all invoices with their customers, newest first.
	List(ctx context.Context) ([]entity.Invoice, error)
	Count(ctx context.Context) (int64, error)
	// NextSeq returns max(invoice id)+1, or 1 when no invoices exist. Used for
	// invoice number allocation.
	NextSeq(ctx context.Context) (int, error)
}
