package model

import (
	"math"
	"strings"
)

// MaxMacroUnits is the inclusive upper bound for any entry macro value.
const MaxMacroUnits = 99999

// ClampInt forces v into the valid macro range [0, MaxMacroUnits].
func ClampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxMacroUnits {
		return MaxMacroUnits
	}
	return v
}

// ClampFloat converts an untrusted numeric value (imported or legacy JSON)
// into the valid macro range. Non-finite values collapse to zero so they
// can never reach stored data; everything else rounds to the nearest unit.
func ClampFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f < 0 {
		return 0
	}
	r := math.Round(f)
	if r > MaxMacroUnits {
		return MaxMacroUnits
	}
	return int(r)
}

// ClampEntry applies the macro range to every numeric field of e.
func ClampEntry(e Entry) Entry {
	e.Calories = ClampInt(e.Calories)
	e.Protein = ClampInt(e.Protein)
	e.Carbs = ClampInt(e.Carbs)
	e.Fat = ClampInt(e.Fat)
	e.Fiber = ClampInt(e.Fiber)
	return e
}

// NormalizeMealType maps free-form input onto the canonical meal labels.
// Unrecognized values normalize to empty, meaning no meal type.
func NormalizeMealType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breakfast":
		return MealBreakfast
	case "lunch":
		return MealLunch
	case "dinner":
		return MealDinner
	case "snack", "snacks":
		return MealSnack
	default:
		return ""
	}
}
