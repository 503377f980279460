package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("expected 90m, got %s", d)
	}
	if d := ParseDuration("not-a-duration", time.Hour); d != time.Hour {
		t.Errorf("expected fallback on parse error, got %s", d)
	}
	if d := ParseDuration("", 5*time.Second); d != 5*time.Second {
		t.Errorf("expected fallback on empty value, got %s", d)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.February || parsed.Day() != 28 {
		t.Errorf("unexpected parsed date %s", parsed)
	}
	if got := FormatDate(parsed); got != "2026-02-28" {
		t.Errorf("expected 2026-02-28, got %s", got)
	}

	if _, err := ParseDate("28/02/2026"); err == nil {
		t.Error("expected an error for a non ISO date")
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("AEST", 10*3600)
	in := time.Date(2026, 8, 27, 23, 45, 12, 999, loc)
	got := DateOnly(in)

	want := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
