package service

import (
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func TestDueDate(t *testing.T) {
	issue := date(t, "2026-01-10")

	if got := DueDate(issue, DefaultPaymentTermsDays).Format("2006-01-02"); got != "2026-01-24" {
		t.Fatalf("expected due date 2026-01-24, got %s", got)
	}
	if got := DueDate(issue, 30).Format("2006-01-02"); got != "2026-02-09" {
		t.Fatalf("expected due date 2026-02-09, got %s", got)
	}
}

func TestParseTermsDays(t *testing.T) {
	if got := ParseTermsDays("21"); got != 21 {
		t.Fatalf("expected 21, got %d", got)
	}
	if got := ParseTermsDays(""); got != DefaultPaymentTermsDays {
		t.Fatalf("expected default %d for empty, got %d", DefaultPaymentTermsDays, got)
	}
	if got := ParseTermsDays("soon"); got != DefaultPaymentTermsDays {
		t.Fatalf("expected default %d for junk, got %d", DefaultPaymentTermsDays, got)
	}
}

func TestServiceIntervalMonths(t *testing.T) {
	if got := ServiceIntervalMonths([]string{"Full Service", "MOT Test"}); got != 12 {
		t.Fatalf("expected 12 months, got %d", got)
	}
	if got := ServiceIntervalMonths([]string{"INTERIM Service"}); got != 6 {
		t.Fatalf("expected 6 months for interim (case-insensitive), got %d", got)
	}
	if got := ServiceIntervalMonths(nil); got != 12 {
		t.Fatalf("expected 12 months for no services, got %d", got)
	}
}

func TestNextServiceDateUsesThirtyDayMonths(t *testing.T) {
	issue := date(t, "2026-01-01")

	// 12 months -> 360 days, not a true calendar year
	standard := NextServiceDate(issue, []string{"Full Service"})
	if days := int(standard.Sub(issue).Hours() / 24); days != 360 {
		t.Fatalf("expected 360-day offset, got %d", days)
	}

	// 6 months -> 180 days
	interim := NextServiceDate(issue, []string{"Interim Service"})
	if days := int(interim.Sub(issue).Hours() / 24); days != 180 {
		t.Fatalf("expected 180-day offset, got %d", days)
	}
}
