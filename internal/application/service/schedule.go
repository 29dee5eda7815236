package service

import (
	"strconv"
	"strings"
	"time"
)

// DefaultPaymentTermsDays is used when the configured payment terms are
// missing or unparsable.
const DefaultPaymentTermsDays = 14

const (
	interimIntervalMonths  = 6
	standardIntervalMonths = 12
)

// ParseTermsDays parses the configured payment_terms_days setting
func ParseTermsDays(s string) int {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultPaymentTermsDays
	}
	return days
}

// DueDate returns the payment due date: issue date plus the configured number
// of calendar days.
func DueDate(issue time.Time, termsDays int) time.Time {
	return issue.AddDate(0, 0, termsDays)
}

// ServiceIntervalMonths returns 6 when any attached service name contains
// "interim" (case-insensitive), else 12.
func ServiceIntervalMonths(serviceNames []string) int {
	for _, name := range serviceNames {
		if strings.Contains(strings.ToLower(name), "interim") {
			return interimIntervalMonths
		}
	}
	return standardIntervalMonths
}

// NextServiceDate approximates months as fixed 30-day blocks. Printed invoices
// have always shown this date, so the approximation is kept rather than
// switching to calendar-month arithmetic.
func NextServiceDate(issue time.Time, serviceNames []string) time.Time {
	return issue.AddDate(0, 0, 30*ServiceIntervalMonths(serviceNames))
}
