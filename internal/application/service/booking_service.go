package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
)

// maxCustomItems is the number of free-form part rows on the booking form
const maxCustomItems = 3

const isoDate = "2006-01-02"

// BookingService handles booking submission and cancellation
type BookingService struct {
	bookingRepo repository.BookingRepository
	invoiceRepo repository.InvoiceRepository
	catalogRepo repository.CatalogRepository

	// Serializes submissions so two concurrent bookings cannot allocate the
	// same invoice sequence number. The unique index on invoice_number is the
	// backstop.
	mu sync.Mutex

	now func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	invoiceRepo repository.InvoiceRepository,
	catalogRepo repository.CatalogRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		invoiceRepo: invoiceRepo,
		catalogRepo: catalogRepo,
		now:         time.Now,
	}
}

// CustomItemInput is one free-form part row as submitted, still unparsed
type CustomItemInput struct {
	Name     string
	Quantity string
	Price    string
	VATRate  string
}

// SubmitBookingInput carries the raw booking form fields. Numeric and date
// fields stay strings here; defaulting on parse failure is part of the
// submission contract.
type SubmitBookingInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string

	VRM     string
	Make    string
	Model   string
	Mileage string

	BookingDate string
	Notes       string

	// Quantities maps catalog service id to the submitted qty_{id} value
	Quantities map[uint]string

	CustomItems []CustomItemInput
}

// SubmitBookingResult reports what a submission created
type SubmitBookingResult struct {
	BookingID uint
	InvoiceID uint
	Invoiced  bool
}

// ListServices returns the catalog for the booking form
func (s *BookingService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.catalogRepo.List(ctx)
}

// ListBookings returns all bookings, newest first
func (s *BookingService) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// Submit creates the customer, vehicle, booking, line items and (when the
// items sum to a positive ex-VAT total) the invoice, all in one transaction.
func (s *BookingService) Submit(ctx context.Context, input *SubmitBookingInput) (*SubmitBookingResult, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Address:   strings.TrimSpace(input.Address),
	}

	vehicle := &entity.Vehicle{
		VRM:     strings.ToUpper(strings.TrimSpace(input.VRM)),
		Make:    strings.TrimSpace(input.Make),
		Model:   strings.TrimSpace(input.Model),
		Mileage: parseMileage(input.Mileage),
	}

	booking := &entity.Booking{
		BookingDate: s.parseBookingDate(input.BookingDate),
		Notes:       strings.TrimSpace(input.Notes),
		Status:      enum.BookingStatusBooked,
	}

	var lines []LineItem
	var items []entity.BookingItem
	for _, svc := range services {
		qty := ParseQuantity(input.Quantities[svc.ID])
		if qty <= 0 {
			continue
		}
		items = append(items, entity.BookingItem{
			ServiceID: svc.ID,
			Quantity:  qty,
			UnitPrice: svc.UnitPrice,
			VATRate:   svc.VATRate,
		})
		lines = append(lines, LineItem{
			Name:      svc.Name,
			Quantity:  qty,
			UnitPrice: svc.UnitPrice,
			VATRate:   svc.VATRate,
		})
	}

	customs := input.CustomItems
	if len(customs) > maxCustomItems {
		customs = customs[:maxCustomItems]
	}

	var miscItems []entity.MiscItem
	for _, custom := range customs {
		name := strings.TrimSpace(custom.Name)
		if name == "" {
			continue
		}
		qty := ParseQuantity(custom.Quantity)
		price := ParsePrice(custom.Price)
		rate := ParseVATRate(custom.VATRate)
		if qty <= 0 || price <= 0 {
			continue
		}
		miscItems = append(miscItems, entity.MiscItem{
			Name:      name,
			Quantity:  qty,
			UnitPrice: price,
			VATRate:   rate,
		})
		lines = append(lines, LineItem{
			Name:      name,
			Quantity:  qty,
			UnitPrice: price,
			VATRate:   rate,
		})
	}

	totals := CalculateTotals(lines)

	sub := &repository.BookingSubmission{
		Customer:  customer,
		Vehicle:   vehicle,
		Booking:   booking,
		Items:     items,
		MiscItems: miscItems,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if totals.Billable() {
		seq, err := s.invoiceRepo.NextSeq(ctx)
		if err != nil {
			return nil, err
		}
		sub.Invoice = &entity.Invoice{
			InvoiceNumber: InvoiceNumber(seq, s.now()),
			IssueDate:     s.now().Format(isoDate),
			TotalExVAT:    totals.ExVAT,
			TotalVAT:      totals.VAT,
			TotalInc:      totals.Inc,
			Status:        enum.InvoiceStatusUnpaid,
		}
	}

	if err := s.bookingRepo.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	result := &SubmitBookingResult{BookingID: sub.Booking.ID}
	if sub.Invoice != nil {
		result.InvoiceID = sub.Invoice.ID
		result.Invoiced = true
	}
	return result, nil
}

// Cancel sets a booking and its invoice to canceled. Cancelling twice leaves
// both at canceled.
func (s *BookingService) Cancel(ctx context.Context, id uint) error {
	return s.bookingRepo.Cancel(ctx, id)
}

// InvoiceNumber formats an invoice number from the next sequence number and
// the issue date, e.g. INV20260829-007.
func InvoiceNumber(seq int, date time.Time) string {
	return fmt.Sprintf("INV%s-%03d", date.Format("20060102"), seq)
}

// parseBookingDate accepts a YYYY-MM-DD date and falls back to today when the
// field is empty or malformed
func (s *BookingService) parseBookingDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now().Format(isoDate)
	}
	if _, err := time.Parse(isoDate, value); err != nil {
		return s.now().Format(isoDate)
	}
	return value
}

// parseMileage returns nil for anything that is not a plain non-negative
// integer
func parseMileage(value string) *int {
	value = strings.TrimSpace(value)
	mileage, err := strconv.Atoi(value)
	if err != nil || mileage < 0 {
		return nil
	}
	return &mileage
}
