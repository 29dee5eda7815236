package service

import (
	"context"
	"testing"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	infraRepo "github.com/motorhouse/garage-invoicing/internal/infrastructure/repository"
	"github.com/motorhouse/garage-invoicing/pkg/apperror"
)

func TestScheduleDerivation(t *testing.T) {
	settings := &SettingsService{values: map[string]string{"payment_terms_days": "14"}}
	s := NewInvoiceService(nil, settings)

	invoice := &entity.Invoice{
		IssueDate: "2026-01-01",
		Booking: entity.Booking{
			Items: []entity.BookingItem{
				{Service: entity.Service{Name: "Full Service"}},
			},
		},
	}

	schedule := s.Schedule(invoice)
	if schedule.DueDate != "2026-01-15" {
		t.Fatalf("expected due date 2026-01-15, got %s", schedule.DueDate)
	}
	// 12 months as 360 days from 2026-01-01
	if schedule.NextServiceDate != "2026-12-27" {
		t.Fatalf("expected next service 2026-12-27, got %s", schedule.NextServiceDate)
	}
}

func TestScheduleInterimService(t *testing.T) {
	settings := &SettingsService{values: map[string]string{"payment_terms_days": "not a number"}}
	s := NewInvoiceService(nil, settings)

	invoice := &entity.Invoice{
		IssueDate: "2026-01-01",
		Booking: entity.Booking{
			Items: []entity.BookingItem{
				{Service: entity.Service{Name: "Interim Service"}},
			},
		},
	}

	schedule := s.Schedule(invoice)
	// terms fall back to 14 days
	if schedule.DueDate != "2026-01-15" {
		t.Fatalf("expected due date 2026-01-15 via default terms, got %s", schedule.DueDate)
	}
	// 6 months as 180 days from 2026-01-01
	if schedule.NextServiceDate != "2026-06-30" {
		t.Fatalf("expected next service 2026-06-30, got %s", schedule.NextServiceDate)
	}
}

func TestGetInvoiceUnknownID(t *testing.T) {
	db := newTestDB(t)
	s := NewInvoiceService(infraRepo.NewInvoiceRepository(db), &SettingsService{values: map[string]string{}})

	_, err := s.GetInvoice(context.Background(), 999999)
	if err == nil {
		t.Fatalf("expected an error for an unknown invoice id")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected a 404 app error, got %v", err)
	}
}
