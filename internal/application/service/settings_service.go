package service

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
)

// SettingsService exposes read access to the company settings. The settings
// table is seeded once and has no edit surface, so the values are loaded once
// at startup instead of per request.
type SettingsService struct {
	values map[string]string
}

// NewSettingsService loads the settings from the store
func NewSettingsService(ctx context.Context, settingsRepo repository.SettingsRepository) (*SettingsService, error) {
	values, err := settingsRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsService{values: values}, nil
}

// Get returns the value for a settings key, or "" when unset
func (s *SettingsService) Get(key string) string {
	return s.values[key]
}

// CompanyName returns the configured company name
func (s *SettingsService) CompanyName() string {
	return s.Get("company_name")
}

// PaymentTermsDays returns the configured payment terms in days, defaulting
// when the setting is missing or unparsable
func (s *SettingsService) PaymentTermsDays() int {
	return ParseTermsDays(s.Get("payment_terms_days"))
}
