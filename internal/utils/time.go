package utils

import (
	"strings"
	"time"
)

const (
	// layoutCapture is the combined "date time" format used by the legacy
	// flight-search capture payloads (dados_json).
	layoutCapture = "02/01/2006 15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseCaptureDateTime parses "DD/MM/YYYY HH:MM" from a capture payload.
// Returns "" on failure: capture data is known to be inconsistent and a
// quotation must still render, so callers treat blank as a placeholder.
func ParseCaptureDateTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := time.ParseInLocation(layoutCapture, s, time.Local)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// JoinDateTime assembles a display timestamp from separate date and time
// columns. When the time value already carries a date component it is
// returned as-is; when both are blank the result is blank (renderers show
// a dash).
func JoinDateTime(date, clock string) string {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	if clock != "" && (strings.Contains(clock, "/") || strings.Contains(clock, "-")) {
		return clock
	}
	if date == "" && clock == "" {
		return ""
	}
	if clock == "" {
		return date
	}
	if date == "" {
		return clock
	}
	return date + " " + clock
}
