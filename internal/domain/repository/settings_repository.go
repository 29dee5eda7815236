package repository

import "context"

// SettingsRepository defines the interface for company settings access
type SettingsRepository interface {
	All(ctx context.Context) (map[string]string, error)
}
