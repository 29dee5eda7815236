package repository

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// List returns the service catalog in seed order
func (r *catalogRepository) List(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).Order("id").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
