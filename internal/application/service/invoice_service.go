package service

import (
	"context"
	"time"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
	"github.com/motorhouse/garage-invoicing/pkg/apperror"
)

// InvoiceService handles invoice retrieval and presentation-side date
// derivation
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	settings    *SettingsService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, settings *SettingsService) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		settings:    settings,
	}
}

// GetInvoice retrieves an invoice with its full booking detail
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns all invoices, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.invoiceRepo.List(ctx)
}

// InvoiceSchedule carries the dates derived from an invoice's issue date
type InvoiceSchedule struct {
	DueDate         string
	NextServiceDate string
}

// Schedule derives the payment due date and the next service date for an
// invoice. The next-service interval is 6 months when any line item is an
// interim service, else 12, counted as fixed 30-day blocks.
func (s *InvoiceService) Schedule(invoice *entity.Invoice) InvoiceSchedule {
	issue, err := time.Parse(isoDate, invoice.IssueDate)
	if err != nil {
		issue = time.Now()
	}

	var names []string
	for _, item := range invoice.Booking.Items {
		names = append(names, item.Service.Name)
	}
	for _, item := range invoice.Booking.MiscItems {
		names = append(names, item.Name)
	}

	return InvoiceSchedule{
		DueDate:         DueDate(issue, s.settings.PaymentTermsDays()).Format(isoDate),
		NextServiceDate: NextServiceDate(issue, names).Format(isoDate),
	}
}
