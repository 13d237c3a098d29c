package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the YYYYMMDD form ESPN accepts in the dates query parameter.
const CompactDateLayout = "20060102"

// timestampLayouts are tried in order when parsing upstream kickoff times.
// ESPN usually omits seconds ("2024-03-01T00:30Z").
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	DateLayout,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseTimestamp parses an upstream timestamp in any of the known layouts.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// CompactDate converts YYYY-MM-DD or YYYYMMDD input to YYYYMMDD.
// It reports false when value is neither.
func CompactDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(CompactDateLayout, value); err == nil {
		return t.Format(CompactDateLayout), true
	}
	if t, err := ParseDate(value); err == nil {
		return t.Format(CompactDateLayout), true
	}
	return "", false
}
