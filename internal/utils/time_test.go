package utils

import (
	"testing"
	"time"
)

func TestFormatISO(t *testing.T) {
	ts := time.Date(2025, 12, 1, 18, 0, 0, 123_000_000, time.FixedZone("IST", 5*3600+1800))
	if got := FormatISO(ts); got != "2025-12-01T12:30:00.123Z" {
		t.Fatalf("unexpected ISO timestamp %q", got)
	}
}

func TestFormatDateTimeZero(t *testing.T) {
	if got := FormatDateTime(time.Time{}); got != "-" {
		t.Fatalf("zero time should render as '-', got %q", got)
	}
}
