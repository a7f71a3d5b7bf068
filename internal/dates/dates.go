// Package dates handles the YYYY-MM-DD day keys used throughout the tracker.
// Day arithmetic goes through time.AddDate so month lengths, leap years, and
// year boundaries are always correct.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical day key format.
const Layout = "2006-01-02"

// Today returns the day key for the given clock reading.
func Today(now time.Time) string {
	return now.Format(Layout)
}

// Parse converts a day key into a time anchored at midnight UTC. The parse is
// strict: "2024-02-30" and non-padded forms are rejected.
func Parse(day string) (time.Time, error) {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", day, err)
	}
	return t, nil
}

// Valid reports whether day is a real calendar date in canonical form.
func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

// Shift moves a day key by the given number of days, negative for the past.
func Shift(day string, days int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(Layout), nil
}

// PreviousDay returns the day before the given one.
func PreviousDay(day string) (string, error) {
	return Shift(day, -1)
}

// NextDay returns the day after the given one.
func NextDay(day string) (string, error) {
	return Shift(day, 1)
}
