package database

import (
	"fmt"
	"log"

	"github.com/motorhouse/garage-invoicing/internal/config"
	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the file-backed SQLite database
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The store is a single local file; a single connection serializes writers
	// and avoids SQLITE_BUSY under concurrent requests.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Successfully opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Vehicle{},
		&entity.Service{},
		&entity.Booking{},
		&entity.BookingItem{},
		&entity.MiscItem{},
		&entity.Invoice{},
		&entity.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the company settings and the service catalog on first
// run. Existing rows are never overwritten.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingCount int64
	if err := db.Model(&entity.Setting{}).Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		settings := []entity.Setting{
			{Key: "company_name", Value: "Motorhouse Beds Ltd"},
			{Key: "address_line1", Value: "87 High Street"},
			{Key: "address_line2", Value: "Clapham"},
			{Key: "address_city", Value: "Bedford"},
			{Key: "address_county", Value: "Bedfordshire"},
			{Key: "address_postcode", Value: "MK41 6AQ"},
			{Key: "phone1", Value: "01234 225570"},
			{Key: "phone2", Value: "07923 829234"},
			{Key: "email", Value: "info@motorhouse-beds.co.uk"},
			{Key: "company_number", Value: "14696224"},
			{Key: "fca_number", Value: "1000208"},
			{Key: "payment_methods", Value: "Bank transfer, Credit/Debit card, Cash"},
			{Key: "bank_details", Value: "Sort Code: 01-02-03, Account No: 12345678"},
			{Key: "payment_terms_days", Value: "14"},
			{Key: "terms_conditions", Value: "Payment is due within 14 days of the invoice date. Late payments may incur interest at 2% per month. All goods remain the property of Motorhouse Beds Ltd until paid for in full."},
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	var serviceCount int64
	if err := db.Model(&entity.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		services := []entity.Service{
			{Name: "Full Service", Description: "Comprehensive vehicle servicing including oil and filter change, safety checks and diagnostics", UnitPrice: 200.0, VATRate: 0.20},
			{Name: "Interim Service", Description: "Basic service including oil and filter change and essential safety checks", UnitPrice: 120.0, VATRate: 0.20},
			{Name: "MOT Test", Description: "Annual Ministry of Transport test to ensure roadworthiness", UnitPrice: 54.85, VATRate: 0.00},
			{Name: "Brake Pads Replacement", Description: "Replace front or rear brake pads as needed", UnitPrice: 150.0, VATRate: 0.20},
			{Name: "Diagnostics", Description: "Computer diagnostics and fault code reading", UnitPrice: 60.0, VATRate: 0.20},
		}
		if err := db.Create(&services).Error; err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
