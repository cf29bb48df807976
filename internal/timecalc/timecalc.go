package timecalc

import (
	"fmt"
	"time"
)

// Layouts understood by the time service. Event IDs are written without
// fractional seconds; older records carry microseconds.
const (
	fracLayout  = "2006-01-02T15:04:05.999999Z"
	plainLayout = "2006-01-02T15:04:05Z"
)

// ParseError reports a timestamp that matches none of the accepted layouts.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse time: %q", e.Value)
}

// ParseTimestamp parses an ISO-8601 UTC timestamp, trying the fractional
// seconds layout before the plain one.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{fracLayout, plainLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: s}
}

// FormatTimestamp formats t as the service's record key in UTC. Keys are
// written at second precision; sub-second parts are truncated, so
// ParseTimestamp(FormatTimestamp(t)) equals t.Truncate(time.Second).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(plainLayout)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (Date, Date) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return DateOf(monday), DateOf(monday.AddDate(0, 0, 6))
}
