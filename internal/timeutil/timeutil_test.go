package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01T00:30Z":         time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC),
		"2024-03-01T00:30:15Z":      time.Date(2024, 3, 1, 0, 30, 15, 0, time.UTC),
		"2024-03-01T01:30+01:00":    time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC),
		"2024-03-01":                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		" 2024-03-01T00:30:00.000Z": time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := ParseTimestamp(in)
		if !ok || !got.Equal(want) {
			t.Fatalf("ParseTimestamp(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseTimestamp("TBD"); ok {
		t.Fatalf("expected garbage to fail")
	}
	if _, ok := ParseTimestamp(""); ok {
		t.Fatalf("expected empty to fail")
	}
}

func TestCompactDate(t *testing.T) {
	for _, in := range []string{"2024-03-01", "20240301"} {
		got, ok := CompactDate(in)
		if !ok || got != "20240301" {
			t.Fatalf("CompactDate(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := CompactDate("03/01/2024"); ok {
		t.Fatalf("expected unsupported layout to fail")
	}
}
