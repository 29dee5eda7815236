package service

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
)

// DashboardService provides the landing-page counts
type DashboardService struct {
	bookingRepo repository.BookingRepository
	invoiceRepo repository.InvoiceRepository
	settings    *SettingsService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	bookingRepo repository.BookingRepository,
	invoiceRepo repository.InvoiceRepository,
	settings *SettingsService,
) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		invoiceRepo: invoiceRepo,
		settings:    settings,
	}
}

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	BookingCount int64
	InvoiceCount int64
	CompanyName  string
}

// GetStats returns booking and invoice counts plus the company name
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	bookingCount, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	invoiceCount, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		BookingCount: bookingCount,
		InvoiceCount: invoiceCount,
		CompanyName:  s.settings.CompanyName(),
	}, nil
}
