package dates_test

import (
	"testing"
	"time"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
)

func TestTodayFormatsDayKey(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.January, 10, 21, 45, 0, 0, time.UTC)
	if got := dates.Today(now); got != "2024-01-10" {
		t.Fatalf("expected 2024-01-10, got %q", got)
	}
}

func TestPreviousDayCrossesLeapBoundary(t *testing.T) {
	t.Parallel()
	got, err := dates.PreviousDay("2024-03-01")
	if err != nil {
		t.Fatalf("previous day: %v", err)
	}
	if got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %q", got)
	}
	got, err = dates.PreviousDay("2023-03-01")
	if err != nil {
		t.Fatalf("previous day: %v", err)
	}
	if got != "2023-02-28" {
		t.Fatalf("expected 2023-02-28, got %q", got)
	}
}

func TestNextDayCrossesMonthAndYear(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"2024-01-31": "2024-02-01",
		"2024-02-29": "2024-03-01",
		"2024-12-31": "2025-01-01",
		"2024-04-30": "2024-05-01",
	}
	for in, want := range cases {
		got, err := dates.NextDay(in)
		if err != nil {
			t.Fatalf("next day of %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("next day of %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestPreviousThenNextRoundTrips(t *testing.T) {
	t.Parallel()
	day := "2024-03-01"
	back, err := dates.PreviousDay(day)
	if err != nil {
		t.Fatalf("previous day: %v", err)
	}
	forward, err := dates.NextDay(back)
	if err != nil {
		t.Fatalf("next day: %v", err)
	}
	if forward != day {
		t.Fatalf("expected round trip back to %q, got %q", day, forward)
	}
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "2024-1-05", "10-01-2024", "yesterday", ""} {
		if dates.Valid(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
		if _, err := dates.PreviousDay(bad); err == nil {
			t.Fatalf("expected previous day of %q to fail", bad)
		}
	}
}

func TestShiftByWindow(t *testing.T) {
	t.Parallel()
	got, err := dates.Shift("2024-01-10", -6)
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	if got != "2024-01-04" {
		t.Fatalf("expected 2024-01-04, got %q", got)
	}
}
