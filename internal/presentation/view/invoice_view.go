package view

import (
	"strconv"

	svc "github.com/motorhouse/garage-invoicing/internal/application/service"
	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
)

// CompanyInfo is the company block printed on every invoice
type CompanyInfo struct {
	Name            string
	AddressLine1    string
	AddressLine2    string
	City            string
	County          string
	Postcode        string
	Phone1          string
	Phone2          string
	Email           string
	CompanyNumber   string
	FCANumber       string
	PaymentMethods  string
	BankDetails     string
	TermsConditions string
}

// InvoiceLine is one rendered invoice row with all amounts formatted
type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	ExVAT     string
	VAT       string
	IncVAT    string
}

// InvoicePage is the view model for the printable invoice
type InvoicePage struct {
	Company CompanyInfo

	InvoiceNumber   string
	IssueDate       string
	DueDate         string
	NextServiceDate string
	Status          string
	Canceled        bool

	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string

	VehicleVRM     string
	VehicleMake    string
	VehicleModel   string
	VehicleMileage string

	Lines      []InvoiceLine
	TotalExVAT string
	TotalVAT   string
	TotalInc   string
}

// NewInvoicePage maps an invoice aggregate to its printable view. Pure; no
// store or clock access.
func NewInvoicePage(invoice *entity.Invoice, company CompanyInfo, schedule svc.InvoiceSchedule) InvoicePage {
	booking := invoice.Booking

	page := InvoicePage{
		Company:         company,
		InvoiceNumber:   invoice.InvoiceNumber,
		IssueDate:       invoice.IssueDate,
		DueDate:         schedule.DueDate,
		NextServiceDate: schedule.NextServiceDate,
		Status:          invoice.Status.String(),
		Canceled:        invoice.Status == enum.InvoiceStatusCanceled,
		CustomerName:    booking.Customer.FullName(),
		CustomerPhone:   booking.Customer.Phone,
		CustomerEmail:   booking.Customer.Email,
		CustomerAddress: booking.Customer.Address,
		VehicleVRM:      booking.Vehicle.VRM,
		VehicleMake:     booking.Vehicle.Make,
		VehicleModel:    booking.Vehicle.Model,
		TotalExVAT:      Money(invoice.TotalExVAT),
		TotalVAT:        Money(invoice.TotalVAT),
		TotalInc:        Money(invoice.TotalInc),
	}

	if booking.Vehicle.Mileage != nil {
		page.VehicleMileage = strconv.Itoa(*booking.Vehicle.Mileage)
	}

	for _, item := range booking.Items {
		page.Lines = append(page.Lines, newInvoiceLine(item.Service.Name, item.Quantity, item.UnitPrice, item.VATRate))
	}
	for _, item := range booking.MiscItems {
		page.Lines = append(page.Lines, newInvoiceLine(item.Name, item.Quantity, item.UnitPrice, item.VATRate))
	}

	return page
}

func newInvoiceLine(name string, qty int, unitPrice, vatRate float64) InvoiceLine {
	line := svc.LineItem{
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		VATRate:   vatRate,
	}
	return InvoiceLine{
		Name:      name,
		Quantity:  qty,
		UnitPrice: Money(unitPrice),
		ExVAT:     Money(line.ExVAT()),
		VAT:       Money(line.VAT()),
		IncVAT:    Money(line.IncVAT()),
	}
}

// NewCompanyInfo builds the company block from the settings map accessor
func NewCompanyInfo(get func(string) string) CompanyInfo {
	return CompanyInfo{
		Name:            get("company_name"),
		AddressLine1:    get("address_line1"),
		AddressLine2:    get("address_line2"),
		City:            get("address_city"),
		County:          get("address_county"),
		Postcode:        get("address_postcode"),
		Phone1:          get("phone1"),
		Phone2:          get("phone2"),
		Email:           get("email"),
		CompanyNumber:   get("company_number"),
		FCANumber:       get("fca_number"),
		PaymentMethods:  get("payment_methods"),
		BankDetails:     get("bank_details"),
		TermsConditions: get("terms_conditions"),
	}
}
