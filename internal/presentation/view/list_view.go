package view

import (
	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
)

// ServiceRow is one catalog entry on the booking form
type ServiceRow struct {
	ID          uint
	Name        string
	Description string
	UnitPrice   string
	VATPercent  string
}

// NewServiceRows maps the catalog for the booking form
func NewServiceRows(services []entity.Service) []ServiceRow {
	rows := make([]ServiceRow, 0, len(services))
	for _, s := range services {
		rows = append(rows, ServiceRow{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			UnitPrice:   Money(s.UnitPrice),
			VATPercent:  VATPercent(s.VATRate),
		})
	}
	return rows
}

// BookingRow is one row on the bookings list
type BookingRow struct {
	ID            uint
	Date          string
	CustomerName  string
	VRM           string
	Status        string
	InvoiceID     uint
	InvoiceNumber string
	HasInvoice    bool
	CanCancel     bool
}

// NewBookingRows maps bookings for the list page. Canceled bookings keep their
// invoice link but lose the cancel action.
func NewBookingRows(bookings []entity.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := BookingRow{
			ID:           b.ID,
			Date:         b.BookingDate,
			CustomerName: b.Customer.FullName(),
			VRM:          b.Vehicle.VRM,
			Status:       b.Status.String(),
			CanCancel:    b.Status != enum.BookingStatusCanceled,
		}
		if b.Invoice != nil {
			row.InvoiceID = b.Invoice.ID
			row.InvoiceNumber = b.Invoice.InvoiceNumber
			row.HasInvoice = true
		}
		rows = append(rows, row)
	}
	return rows
}

// InvoiceRow is one row on the invoices list
type InvoiceRow struct {
	ID            uint
	InvoiceNumber string
	IssueDate     string
	CustomerName  string
	TotalInc      string
	Status        string
}

// NewInvoiceRows maps invoices for the list page
func NewInvoiceRows(invoices []entity.Invoice) []InvoiceRow {
	rows := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, InvoiceRow{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			IssueDate:     inv.IssueDate,
			CustomerName:  inv.Booking.Customer.FullName(),
			TotalInc:      Money(inv.TotalInc),
			Status:        inv.Status.String(),
		})
	}
	return rows
}
