package repository

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
)

// CatalogRepository defines the interface for the service catalog
type CatalogRepository interface {
	List(ctx context.Context) ([]entity.Service, error)
}
