package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/application/service"
	"github.com/motorhouse/garage-invoicing/internal/config"
	"github.com/motorhouse/garage-invoicing/internal/infrastructure/database"
	"github.com/motorhouse/garage-invoicing/internal/infrastructure/repository"
	"github.com/motorhouse/garage-invoicing/internal/presentation/http/handler"
	"github.com/motorhouse/garage-invoicing/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	settingsService, err := service.NewSettingsService(context.Background(), settingsRepo)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	bookingService := service.NewBookingService(bookingRepo, invoiceRepo, catalogRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, settingsService)
	dashboardService := service.NewDashboardService(bookingRepo, invoiceRepo, settingsService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Booking:   handler.NewBookingHandler(bookingService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
