package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/motorhouse/garage-invoicing/internal/config"
	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
	"github.com/motorhouse/garage-invoicing/internal/infrastructure/database"
	infraRepo "github.com/motorhouse/garage-invoicing/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := database.SeedDefaultData(db); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return db
}

func newTestBookingService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	s := NewBookingService(
		infraRepo.NewBookingRepository(db),
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewCatalogRepository(db),
	)
	s.now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	}
	return s, db
}

func TestSubmitCreatesInvoice(t *testing.T) {
	s, db := newTestBookingService(t)
	ctx := context.Background()

	// Seeded service 1 is Full Service at 200.00 with VAT 0.20
	result, err := s.Submit(ctx, &SubmitBookingInput{
		FirstName:  "Jane",
		LastName:   "Doe",
		VRM:        "ab12 cde",
		Quantities: map[uint]string{1: "2"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Invoiced {
		t.Fatalf("expected an invoice to be created")
	}

	var invoice entity.Invoice
	if err := db.First(&invoice, result.InvoiceID).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.TotalExVAT != 400.0 || invoice.TotalVAT != 80.0 || invoice.TotalInc != 480.0 {
		t.Fatalf("expected totals 400/80/480, got %v/%v/%v",
			invoice.TotalExVAT, invoice.TotalVAT, invoice.TotalInc)
	}
	if invoice.TotalInc != invoice.TotalExVAT+invoice.TotalVAT {
		t.Fatalf("inclusive total is not the exact sum")
	}
	if invoice.Status != enum.InvoiceStatusUnpaid {
		t.Fatalf("expected unpaid status, got %s", invoice.Status)
	}
	if invoice.InvoiceNumber != "INV20260829-001" {
		t.Fatalf("expected INV20260829-001, got %s", invoice.InvoiceNumber)
	}

	var vehicle entity.Vehicle
	if err := db.First(&vehicle).Error; err != nil {
		t.Fatalf("load vehicle: %v", err)
	}
	if vehicle.VRM != "AB12 CDE" {
		t.Fatalf("expected uppercased VRM, got %q", vehicle.VRM)
	}
	if vehicle.Mileage != nil {
		t.Fatalf("expected nil mileage for empty input, got %v", *vehicle.Mileage)
	}

	var itemCount int64
	db.Model(&entity.BookingItem{}).Count(&itemCount)
	if itemCount != 1 {
		t.Fatalf("expected 1 booking item, got %d", itemCount)
	}
}

func TestSubmitCustomItemOnly(t *testing.T) {
	s, db := newTestBookingService(t)

	result, err := s.Submit(context.Background(), &SubmitBookingInput{
		FirstName: "Sam",
		LastName:  "Smith",
		VRM:       "XY99ZZZ",
		CustomItems: []CustomItemInput{
			{Name: "Tow fee", Quantity: "1", Price: "50", VATRate: ""},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Invoiced {
		t.Fatalf("expected an invoice for a valid custom item")
	}

	var invoice entity.Invoice
	if err := db.First(&invoice, result.InvoiceID).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.TotalExVAT != 50.0 || invoice.TotalVAT != 10.0 || invoice.TotalInc != 60.0 {
		t.Fatalf("expected totals 50/10/60 (default VAT), got %v/%v/%v",
			invoice.TotalExVAT, invoice.TotalVAT, invoice.TotalInc)
	}

	var misc entity.MiscItem
	if err := db.First(&misc).Error; err != nil {
		t.Fatalf("load misc item: %v", err)
	}
	if misc.VATRate != DefaultVATRate {
		t.Fatalf("expected default VAT rate persisted, got %v", misc.VATRate)
	}
}

func TestSubmitWithoutItemsCreatesNoInvoice(t *testing.T) {
	s, db := newTestBookingService(t)

	result, err := s.Submit(context.Background(), &SubmitBookingInput{
		FirstName: "No",
		LastName:  "Items",
		VRM:       "AA11AAA",
		Quantities: map[uint]string{
			1: "0", 2: "", 3: "abc",
		},
		CustomItems: []CustomItemInput{
			{Name: "Unpriced part", Quantity: "2", Price: "junk"}, // price -> 0, skipped
			{Name: "", Quantity: "1", Price: "10"},                // nameless, skipped
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Invoiced {
		t.Fatalf("expected no invoice for a booking without billable items")
	}

	var bookingCount, invoiceCount, miscCount int64
	db.Model(&entity.Booking{}).Count(&bookingCount)
	db.Model(&entity.Invoice{}).Count(&invoiceCount)
	db.Model(&entity.MiscItem{}).Count(&miscCount)
	if bookingCount != 1 {
		t.Fatalf("expected the booking row to exist, got %d", bookingCount)
	}
	if invoiceCount != 0 {
		t.Fatalf("expected no invoice rows, got %d", invoiceCount)
	}
	if miscCount != 0 {
		t.Fatalf("expected skipped custom items not to be persisted, got %d", miscCount)
	}
}

func TestSubmitDefaultsMalformedDate(t *testing.T) {
	s, db := newTestBookingService(t)

	_, err := s.Submit(context.Background(), &SubmitBookingInput{
		FirstName:   "Bad",
		LastName:    "Date",
		VRM:         "BB22BBB",
		Mileage:     "lots",
		BookingDate: "29/08/2026",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var booking entity.Booking
	if err := db.First(&booking).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.BookingDate != "2026-08-29" {
		t.Fatalf("expected today's date for malformed input, got %s", booking.BookingDate)
	}

	var vehicle entity.Vehicle
	if err := db.First(&vehicle).Error; err != nil {
		t.Fatalf("load vehicle: %v", err)
	}
	if vehicle.Mileage != nil {
		t.Fatalf("expected nil mileage for non-numeric input")
	}
}

func TestInvoiceNumbersAreSequential(t *testing.T) {
	s, db := newTestBookingService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Submit(ctx, &SubmitBookingInput{
			FirstName:  "Repeat",
			LastName:   "Customer",
			VRM:        "CC33CCC",
			Quantities: map[uint]string{1: "1"},
		})
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	var invoices []entity.Invoice
	if err := db.Order("id").Find(&invoices).Error; err != nil {
		t.Fatalf("load invoices: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invoices))
	}

	pattern := regexp.MustCompile(`^INV\d{8}-\d{3}$`)
	for _, inv := range invoices {
		if !pattern.MatchString(inv.InvoiceNumber) {
			t.Errorf("invoice number %q does not match format", inv.InvoiceNumber)
		}
	}
	if invoices[0].InvoiceNumber == invoices[1].InvoiceNumber {
		t.Fatalf("invoice numbers must be unique, both are %s", invoices[0].InvoiceNumber)
	}
	if invoices[1].InvoiceNumber != "INV20260829-002" {
		t.Fatalf("expected second invoice INV20260829-002, got %s", invoices[1].InvoiceNumber)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s, db := newTestBookingService(t)
	ctx := context.Background()

	result, err := s.Submit(ctx, &SubmitBookingInput{
		FirstName:  "To",
		LastName:   "Cancel",
		VRM:        "DD44DDD",
		Quantities: map[uint]string{1: "1"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.Cancel(ctx, result.BookingID); err != nil {
			t.Fatalf("Cancel attempt %d: %v", i+1, err)
		}
	}

	var booking entity.Booking
	if err := db.First(&booking, result.BookingID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.Status != enum.BookingStatusCanceled {
		t.Fatalf("expected canceled booking, got %s", booking.Status)
	}

	var invoice entity.Invoice
	if err := db.First(&invoice, result.InvoiceID).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.Status != enum.InvoiceStatusCanceled {
		t.Fatalf("expected canceled invoice, got %s", invoice.Status)
	}
	if invoice.TotalInc != 240.0 {
		t.Fatalf("cancellation must not alter totals, got %v", invoice.TotalInc)
	}
}

func TestInvoiceNumberFormat(t *testing.T) {
	when := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if got := InvoiceNumber(7, when); got != "INV20260829-007" {
		t.Fatalf("expected INV20260829-007, got %s", got)
	}
	if got := InvoiceNumber(123, when); got != "INV20260829-123" {
		t.Fatalf("expected INV20260829-123, got %s", got)
	}
}
