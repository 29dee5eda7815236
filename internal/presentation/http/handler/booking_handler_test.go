package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/application/service"
	"github.com/motorhouse/garage-invoicing/internal/config"
	"github.com/motorhouse/garage-invoicing/internal/infrastructure/database"
	"github.com/motorhouse/garage-invoicing/internal/infrastructure/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteDB(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaultData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	settingsService, err := service.NewSettingsService(context.Background(), settingsRepo)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	bookingService := service.NewBookingService(bookingRepo, invoiceRepo, catalogRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, settingsService)

	bookingHandler := NewBookingHandler(bookingService)
	invoiceHandler := NewInvoiceHandler(invoiceService, settingsService)

	router := gin.New()
	router.POST("/booking/new", bookingHandler.Submit)
	router.POST("/booking/cancel", bookingHandler.Cancel)
	router.GET("/invoice/:id", invoiceHandler.Show)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitBookingRedirectsToInvoice(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/booking/new", url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"vrm":        {"ab12cde"},
		"qty_1":      {"2"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/invoice/1" {
		t.Fatalf("expected redirect to /invoice/1, got %q", loc)
	}
}

func TestSubmitBookingWithoutItemsRedirectsHome(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/booking/new", url.Values{
		"first_name": {"No"},
		"last_name":  {"Items"},
		"vrm":        {"aa11aaa"},
		"qty_1":      {"0"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestCancelBookingRejectsNonIntegerID(t *testing.T) {
	router := newTestRouter(t)

	rec := postForm(router, "/booking/cancel", url.Values{"booking_id": {"abc"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer booking id, got %d", rec.Code)
	}
}

func TestCancelBookingRedirects(t *testing.T) {
	router := newTestRouter(t)

	// Create a booking first
	postForm(router, "/booking/new", url.Values{
		"first_name": {"To"},
		"last_name":  {"Cancel"},
		"vrm":        {"bb22bbb"},
		"qty_1":      {"1"},
	})

	rec := postForm(router, "/booking/cancel", url.Values{"booking_id": {"1"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/bookings" {
		t.Fatalf("expected redirect to /bookings, got %q", loc)
	}
}

func TestShowInvoiceUnknownID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/invoice/999999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown invoice, got %d", rec.Code)
	}
}

func TestShowInvoiceNonIntegerID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/invoice/latest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-integer invoice id, got %d", rec.Code)
	}
}
