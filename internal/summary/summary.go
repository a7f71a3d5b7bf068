// Package summary computes totals over the entry log. Everything here is a
// pure function of the entries passed in; nothing reads or writes storage.
package summary

import (
	"math"
	"sort"
	"time"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

// DayTotals is one day's consumption.
type DayTotals struct {
	Date    string       `json:"date"`
	Entries int          `json:"entries"`
	Totals  model.Totals `json:"totals"`
}

// MacroProgress compares one macro's consumption against its target.
// Remaining goes negative once the target is exceeded.
type MacroProgress struct {
	Label     string `json:"label"`
	Unit      string `json:"unit"`
	Consumed  int    `json:"consumed"`
	Target    int    `json:"target"`
	Remaining int    `json:"remaining"`
	Percent   int    `json:"percent"`
}

// RangeReport aggregates a trailing window of days.
type RangeReport struct {
	From            string       `json:"from"`
	To              string       `json:"to"`
	Totals          model.Totals `json:"totals"`
	DaysWithEntries int          `json:"daysWithEntries"`
	AvgCaloriesDay  int          `json:"avgCaloriesPerDay"`
	Days            []DayTotals  `json:"days"`
}

// TotalsFor sums the macros of every entry logged on the given day.
func TotalsFor(entries []model.Entry, date string) model.Totals {
	var totals model.Totals
	for _, e := range entries {
		if e.Date == date {
			totals.Add(e)
		}
	}
	return totals
}

// TotalsForRange sums entries from the trailing window of sinceDays days
// ending at now. The window is (today-sinceDays, today]: with sinceDays=7
// it covers today and the six days before it. Entries dated after today
// or carrying an unparseable date are left out.
func TotalsForRange(entries []model.Entry, now time.Time, sinceDays int) model.Totals {
	var totals model.Totals
	for _, e := range inRange(entries, now, sinceDays) {
		totals.Add(e)
	}
	return totals
}

// DailyTotals groups the trailing window's entries by day, oldest first.
// Days without entries are not listed.
func DailyTotals(entries []model.Entry, now time.Time, sinceDays int) []DayTotals {
	byDay := make(map[string]*DayTotals)
	for _, e := range inRange(entries, now, sinceDays) {
		day, ok := byDay[e.Date]
		if !ok {
			day = &DayTotals{Date: e.Date}
			byDay[e.Date] = day
		}
		day.Entries++
		day.Totals.Add(e)
	}
	out := make([]DayTotals, 0, len(byDay))
	for _, day := range byDay {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Report builds the full trailing-window view used by the week command.
func Report(entries []model.Entry, now time.Time, sinceDays int) RangeReport {
	today := dates.Today(now)
	from, err := dates.Shift(today, -(sinceDays - 1))
	if err != nil {
		from = today
	}
	report := RangeReport{
		From: from,
		To:   today,
		Days: DailyTotals(entries, now, sinceDays),
	}
	for _, day := range report.Days {
		report.Totals.Calories += day.Totals.Calories
		report.Totals.Protein += day.Totals.Protein
		report.Totals.Carbs += day.Totals.Carbs
		report.Totals.Fat += day.Totals.Fat
		report.Totals.Fiber += day.Totals.Fiber
	}
	report.DaysWithEntries = len(report.Days)
	if report.DaysWithEntries > 0 {
		report.AvgCaloriesDay = int(math.Round(float64(report.Totals.Calories) / float64(report.DaysWithEntries)))
	}
	return report
}

// Progress lays out each macro against the target, in display order.
func Progress(totals model.Totals, target model.Target) []MacroProgress {
	return []MacroProgress{
		progressRow("Calories", "kcal", totals.Calories, target.Kcal),
		progressRow("Protein", "g", totals.Protein, target.Protein),
		progressRow("Carbs", "g", totals.Carbs, target.Carbs),
		progressRow("Fat", "g", totals.Fat, target.Fat),
		progressRow("Fiber", "g", totals.Fiber, target.Fiber),
	}
}

func progressRow(label, unit string, consumed, target int) MacroProgress {
	row := MacroProgress{
		Label:     label,
		Unit:      unit,
		Consumed:  consumed,
		Target:    target,
		Remaining: target - consumed,
	}
	if target > 0 {
		row.Percent = int(math.Round(float64(consumed) / float64(target) * 100))
	}
	return row
}

func inRange(entries []model.Entry, now time.Time, sinceDays int) []model.Entry {
	if sinceDays < 1 {
		return nil
	}
	today := dates.Today(now)
	cutoff, err := dates.Shift(today, -sinceDays)
	if err != nil {
		return nil
	}
	var out []model.Entry
	for _, e := range entries {
		if !dates.Valid(e.Date) {
			continue
		}
		// canonical day keys compare chronologically as strings
		if e.Date > cutoff && e.Date <= today {
			out = append(out, e)
		}
	}
	return out
}
