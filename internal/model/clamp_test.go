package model_test

import (
	"math"
	"testing"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

func TestClampIntBounds(t *testing.T) {
	t.Parallel()
	if got := model.ClampInt(-5); got != 0 {
		t.Fatalf("expected negative to clamp to 0, got %d", got)
	}
	if got := model.ClampInt(120000); got != model.MaxMacroUnits {
		t.Fatalf("expected over-cap to clamp to %d, got %d", model.MaxMacroUnits, got)
	}
	if got := model.ClampInt(450); got != 450 {
		t.Fatalf("expected in-range value unchanged, got %d", got)
	}
}

func TestClampIntIdempotent(t *testing.T) {
	t.Parallel()
	for _, v := range []int{-99, 0, 1, 2500, model.MaxMacroUnits, math.MaxInt32} {
		once := model.ClampInt(v)
		twice := model.ClampInt(once)
		if once != twice {
			t.Fatalf("clamp not idempotent for %d: %d then %d", v, once, twice)
		}
	}
}

func TestClampFloatRejectsNonFinite(t *testing.T) {
	t.Parallel()
	if got := model.ClampFloat(math.NaN()); got != 0 {
		t.Fatalf("expected NaN to clamp to 0, got %d", got)
	}
	if got := model.ClampFloat(math.Inf(1)); got != 0 {
		t.Fatalf("expected +Inf to clamp to 0, got %d", got)
	}
	if got := model.ClampFloat(math.Inf(-1)); got != 0 {
		t.Fatalf("expected -Inf to clamp to 0, got %d", got)
	}
}

func TestClampFloatRoundsToNearestUnit(t *testing.T) {
	t.Parallel()
	if got := model.ClampFloat(17.6); got != 18 {
		t.Fatalf("expected 17.6 to round to 18, got %d", got)
	}
	if got := model.ClampFloat(17.4); got != 17 {
		t.Fatalf("expected 17.4 to round to 17, got %d", got)
	}
	if got := model.ClampFloat(-3.2); got != 0 {
		t.Fatalf("expected negative to clamp to 0, got %d", got)
	}
	if got := model.ClampFloat(1e12); got != model.MaxMacroUnits {
		t.Fatalf("expected huge value to clamp to cap, got %d", got)
	}
}

func TestClampEntryTouchesEveryMacro(t *testing.T) {
	t.Parallel()
	e := model.ClampEntry(model.Entry{
		Calories: -10,
		Protein:  200000,
		Carbs:    55,
		Fat:      -1,
		Fiber:    100001,
	})
	if e.Calories != 0 || e.Fat != 0 {
		t.Fatalf("expected negatives to clamp to 0, got %+v", e)
	}
	if e.Protein != model.MaxMacroUnits || e.Fiber != model.MaxMacroUnits {
		t.Fatalf("expected over-cap to clamp to %d, got %+v", model.MaxMacroUnits, e)
	}
	if e.Carbs != 55 {
		t.Fatalf("expected valid value untouched, got %+v", e)
	}
}

func TestNormalizeMealType(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"breakfast": model.MealBreakfast,
		" Lunch ":   model.MealLunch,
		"DINNER":    model.MealDinner,
		"snack":     model.MealSnack,
		"snacks":    model.MealSnack,
		"brunch":    "",
		"":          "",
	}
	for in, want := range cases {
		if got := model.NormalizeMealType(in); got != want {
			t.Fatalf("normalize %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestDefaultTarget(t *testing.T) {
	t.Parallel()
	target := model.DefaultTarget()
	if target.Kcal != 2000 || target.Protein != 140 || target.Carbs != 200 || target.Fat != 60 || target.Fiber != 25 {
		t.Fatalf("unexpected default target: %+v", target)
	}
}

func TestTotalsAdd(t *testing.T) {
	t.Parallel()
	var total model.Totals
	total.Add(model.Entry{Calories: 180, Protein: 12, Carbs: 24, Fat: 4, Fiber: 6})
	total.Add(model.Entry{Calories: 200, Protein: 6, Carbs: 28, Fat: 4, Fiber: 3})
	want := model.Totals{Calories: 380, Protein: 18, Carbs: 52, Fat: 8, Fiber: 9}
	if total != want {
		t.Fatalf("expected %+v, got %+v", want, total)
	}
}
