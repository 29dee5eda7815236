package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/internal/application/service"
	"github.com/motorhouse/garage-invoicing/internal/presentation/view"
	"github.com/motorhouse/garage-invoicing/pkg/apperror"
)

// BookingHandler handles the booking form, list and cancellation
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// NewForm handles GET /booking/new
func (h *BookingHandler) NewForm(c *gin.Context) {
	services, err := h.bookingService.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "booking_form.html", gin.H{
		"Services":    view.NewServiceRows(services),
		"CustomSlots": []int{1, 2, 3},
	})
}

// Submit handles POST /booking/new. On success it redirects 303 to the new
// invoice, or back to the dashboard when no billable items were selected.
func (h *BookingHandler) Submit(c *gin.Context) {
	services, err := h.bookingService.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	input := &service.SubmitBookingInput{
		FirstName:   c.PostForm("first_name"),
		LastName:    c.PostForm("last_name"),
		Phone:       c.PostForm("phone"),
		Email:       c.PostForm("email"),
		Address:     c.PostForm("address"),
		VRM:         c.PostForm("vrm"),
		Make:        c.PostForm("make"),
		Model:       c.PostForm("model"),
		Mileage:     c.PostForm("mileage"),
		BookingDate: c.PostForm("booking_date"),
		Notes:       c.PostForm("notes"),
		Quantities:  make(map[uint]string, len(services)),
	}

	for _, svc := range services {
		input.Quantities[svc.ID] = c.PostForm(fmt.Sprintf("qty_%d", svc.ID))
	}

	for i := 1; i <= 3; i++ {
		input.CustomItems = append(input.CustomItems, service.CustomItemInput{
			Name:     c.PostForm(fmt.Sprintf("custom_name_%d", i)),
			Quantity: c.PostForm(fmt.Sprintf("custom_qty_%d", i)),
			Price:    c.PostForm(fmt.Sprintf("custom_price_%d", i)),
			VATRate:  c.PostForm(fmt.Sprintf("custom_vat_%d", i)),
		})
	}

	result, err := h.bookingService.Submit(c.Request.Context(), input)
	if err != nil {
		renderError(c, err)
		return
	}

	if result.Invoiced {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/invoice/%d", result.InvoiceID))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// List handles GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "booking_list.html", gin.H{
		"Bookings": view.NewBookingRows(bookings),
	})
}

// Cancel handles POST /booking/cancel. A non-integer booking_id is a 400; a
// repeat cancel is a no-op.
func (h *BookingHandler) Cancel(c *gin.Context) {
	idValue := strings.TrimSpace(c.PostForm("booking_id"))
	id, err := strconv.ParseUint(idValue, 10, 32)
	if err != nil {
		renderError(c, apperror.NewBadRequestError("Invalid booking ID"))
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), uint(id)); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/bookings")
}
