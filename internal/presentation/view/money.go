package view

import (
	"fmt"
	"math"
)

// Money formats an amount for display. Stored totals are exact sums; the
// 2-decimal rounding happens here and nowhere else.
func Money(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

// VATPercent formats a fractional VAT rate as a whole percentage, e.g. 0.20
// renders as "20%".
func VATPercent(rate float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rate*100)))
}
