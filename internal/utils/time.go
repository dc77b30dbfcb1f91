package utils

import "time"

const (
	layoutDateTime = "2006-01-02 15:04"
	layoutISO      = "2006-01-02T15:04:05.000Z07:00"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDateTime formats t as "YYYY-MM-DD HH:MM" in local timezone.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatISO renders t in UTC with millisecond precision, the way the
// storefront's JavaScript clients print timestamps.
func FormatISO(t time.Time) string {
	return t.UTC().Format(layoutISO)
}
