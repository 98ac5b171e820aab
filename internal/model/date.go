package model

import (
	"fmt"
	"strings"
	"time"
)

// timestamp layouts accepted in raw and canonical entries, tried in order.
// The trailing Z the source app emits is stripped before parsing.
var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string, tolerating a literal
// trailing "Z" and missing time components.
func ParseTimestamp(ts string) (time.Time, error) {
	s := strings.TrimSpace(ts)
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("model: unparsable timestamp %q", ts)
}

// DateID returns the day-month-2digityear identifier for a timestamp,
// e.g. "4-5-25" for May 4th 2025. Day and month carry no zero padding.
func DateID(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year()%100)
}

// PinYear returns t with its year component replaced. Month, day, and time
// of day are unchanged. Entries predate the corrected journal year, so the
// year recorded by the source app is deliberately overridden.
func PinYear(t time.Time, year int) time.Time {
	if t.Year() == year {
		return t
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// CanonicalTimestamp formats t in the fixed canonical form with a literal
// UTC marker.
func CanonicalTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z")
}
