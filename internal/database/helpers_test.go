package database

import (
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	now := time.Now()
	stored := formatTime(now)

	parsed, err := parseTime(stored)
	if err != nil {
		t.Fatalf("Failed to parse stored time: %v", err)
	}
	if !parsed.Equal(now) {
		t.Errorf("Round trip lost precision: %v != %v", parsed, now)
	}
}

func TestFormatTimeIsLexicographicallyOrdered(t *testing.T) {
	// Stored strings must compare chronologically as strings: trailing
	// nanosecond zeros are never trimmed and everything is UTC.
	earlier := time.Date(2026, 3, 1, 10, 0, 0, 5, time.UTC)
	later := time.Date(2026, 3, 1, 10, 0, 0, 120, time.UTC)

	if !(formatTime(earlier) < formatTime(later)) {
		t.Errorf("String order should match time order: %q vs %q",
			formatTime(earlier), formatTime(later))
	}

	// Zone offsets normalize to UTC before formatting
	offset := time.FixedZone("plus9", 9*3600)
	inOffset := time.Date(2026, 3, 1, 19, 0, 0, 0, offset) // same instant as 10:00 UTC
	if formatTime(inOffset) != formatTime(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("Offset time should normalize to UTC, got %q", formatTime(inOffset))
	}
}

func TestParseTimeRejectsMalformed(t *testing.T) {
	if _, err := parseTime("not-a-time"); err == nil {
		t.Error("Malformed timestamp should be an error")
	}
	if _, err := parseTime("2026-03-01"); err == nil {
		t.Error("Date-only string should be an error")
	}
}
