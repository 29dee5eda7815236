package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/application/service"
)

// DashboardHandler renders the landing page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Show handles GET /
func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"CompanyName":  stats.CompanyName,
		"BookingCount": stats.BookingCount,
		"InvoiceCount": stats.InvoiceCount,
	})
}
