package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/application/service"
	"github.com/motorhouse/garage-invoicing/internal/presentation/view"
	"github.com/motorhouse/garage-invoicing/pkg/apperror"
)

// InvoiceHandler renders the invoice list and the printable invoice page
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	settingsService *service.SettingsService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, settingsService *service.SettingsService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		settingsService: settingsService,
	}
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "invoice_list.html", gin.H{
		"Invoices": view.NewInvoiceRows(invoices),
	})
}

// Show handles GET /invoice/:id. Unknown or non-integer ids are a 404.
func (h *InvoiceHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderError(c, apperror.NewNotFoundError("Invoice"))
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), uint(id))
	if err != nil {
		renderError(c, err)
		return
	}

	page := view.NewInvoicePage(
		invoice,
		view.NewCompanyInfo(h.settingsService.Get),
		h.invoiceService.Schedule(invoice),
	)
	c.HTML(http.StatusOK, "invoice.html", page)
}
