package services

import (
	"testing"
	"time"
)

func TestDayTruncatesInLocation(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 UTC is already the next day in Berlin.
	moment := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	got := Day(moment, berlin)
	want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Day = %v, want %v", got, want)
	}
}

func TestParseDayRoundTrips(t *testing.T) {
	t.Parallel()

	day, err := ParseDay("2025-06-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDay(day) != "2025-06-01" {
		t.Fatalf("round trip = %q", FormatDay(day))
	}

	if _, err := ParseDay("06/01/2025"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}
