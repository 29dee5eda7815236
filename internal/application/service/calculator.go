package service

import (
	"strconv"
	"strings"
)

// DefaultVATRate is applied to custom parts when the submitted rate is absent
// or unparsable.
const DefaultVATRate = 0.20

// LineItem is one priced row on an invoice: a catalog service or a custom part.
type LineItem struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
	VATRate     float64
}

// ExVAT returns the line total before VAT
func (li LineItem) ExVAT() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// VAT returns the VAT portion of the line
func (li LineItem) VAT() float64 {
	return li.ExVAT() * li.VATRate
}

// IncVAT returns the line total with VAT included
func (li LineItem) IncVAT() float64 {
	return li.ExVAT() + li.VAT()
}

// InvoiceTotals holds the three invoice totals. They are exact sums of the
// line totals; no per-line rounding happens before aggregation.
type InvoiceTotals struct {
	ExVAT float64
	VAT   float64
	Inc   float64
}

// Billable reports whether the totals justify creating an invoice
func (t InvoiceTotals) Billable() bool {
	return t.ExVAT > 0
}

// CalculateTotals aggregates line items into invoice totals
func CalculateTotals(items []LineItem) InvoiceTotals {
	var totals InvoiceTotals
	for _, item := range items {
		totals.ExVAT += item.ExVAT()
		totals.VAT += item.VAT()
	}
	totals.Inc = totals.ExVAT + totals.VAT
	return totals
}

// ParseQuantity parses a submitted quantity, treating anything that is not an
// integer as zero. Zero-quantity items are skipped, never rejected.
func ParseQuantity(s string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return qty
}

// ParsePrice parses a submitted unit price, treating unparsable input as zero
func ParsePrice(s string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return price
}

// ParseVATRate parses a submitted VAT rate, falling back to DefaultVATRate
// when the value is absent or unparsable
func ParseVATRate(s string) float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultVATRate
	}
	return rate
}
