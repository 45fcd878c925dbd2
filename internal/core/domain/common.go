package domain

import "time"

// Layouts used for every date and timestamp the service writes.
const (
	DateLayout      = time.DateOnly
	TimestampLayout = "2006-01-02T15:04:05.000000"
)

// FormatTimestamp renders t as an ISO-8601 local timestamp with microseconds.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
