package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/config"
	"github.com/motorhouse/garage-invoicing/internal/presentation/http/handler"
	"github.com/motorhouse/garage-invoicing/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Booking   *handler.BookingHandler
	Invoice   *handler.InvoiceHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())

	// HTML templates and static assets
	router.LoadHTMLGlob(filepath.Join(cfg.Web.Dir, "templates", "*.html"))
	router.Static("/static", filepath.Join(cfg.Web.Dir, "static"))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Pages
	router.GET("/", h.Dashboard.Show)
	router.GET("/booking/new", h.Booking.NewForm)
	router.GET("/bookings", h.Booking.List)
	router.GET("/invoices", h.Invoice.List)
	router.GET("/invoice/:id", h.Invoice.Show)

	// Form submissions are rate limited per client
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	posts := router.Group("", rateLimiter.Middleware())
	{
		posts.POST("/booking/new", h.Booking.Submit)
		posts.POST("/booking/cancel", h.Booking.Cancel)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})

	return router
}
