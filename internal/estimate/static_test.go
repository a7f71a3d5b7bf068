package estimate_test

import (
	"context"
	"testing"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/estimate"
)

func TestEstimateExactDishName(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "dal")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Dal" {
		t.Fatalf("expected Dal, got %q", result.Label)
	}
	if result.Calories != 180 || result.Protein != 12 || result.Carbs != 24 || result.Fat != 4 || result.Fiber != 6 {
		t.Fatalf("unexpected macros: %+v", result)
	}
	if !result.Verified {
		t.Fatalf("expected an exact dish name to be verified, confidence %.3f", result.Confidence)
	}
}

func TestEstimatePhotoFilename(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "IMG_20240110_dal_lunch.jpg")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Dal" {
		t.Fatalf("expected filename noise to be ignored, got %q", result.Label)
	}
	if result.Confidence < estimate.DefaultVerifiedMinScore {
		t.Fatalf("expected high confidence, got %.3f", result.Confidence)
	}
}

func TestEstimateAliasMatches(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "chapati")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Roti" {
		t.Fatalf("expected chapati to resolve to Roti, got %q", result.Label)
	}
}

func TestEstimateMultiTokenDish(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "paneer tikka")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Paneer tikka" {
		t.Fatalf("expected Paneer tikka, got %q", result.Label)
	}
	if !result.Verified {
		t.Fatalf("expected verified result, got confidence %.3f", result.Confidence)
	}
}

func TestEstimateUnknownFallsBack(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "completely unknown dish zzz")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Mixed meal" {
		t.Fatalf("expected the generic fallback, got %q", result.Label)
	}
	if result.Verified {
		t.Fatalf("fallback must never be verified")
	}
	if result.Confidence >= estimate.DefaultVerifiedMinScore {
		t.Fatalf("fallback confidence too high: %.3f", result.Confidence)
	}
}

func TestEstimateEmptyHint(t *testing.T) {
	t.Parallel()
	for _, hint := range []string{"", "   "} {
		_, err := estimate.NewStatic().Estimate(context.Background(), hint)
		if err != estimate.ErrEmptyHint {
			t.Fatalf("expected ErrEmptyHint for %q, got %v", hint, err)
		}
	}
}

func TestEstimateAllNoiseFilenameFallsBack(t *testing.T) {
	t.Parallel()
	result, err := estimate.NewStatic().Estimate(context.Background(), "IMG_1234.jpg")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if result.Label != "Mixed meal" {
		t.Fatalf("expected fallback for an uninformative filename, got %q", result.Label)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	t.Parallel()
	oracle := estimate.NewStatic()
	first, err := oracle.Estimate(context.Background(), "chicken curry with rice")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	second, err := oracle.Estimate(context.Background(), "chicken curry with rice")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if first.Label != second.Label || first.Confidence != second.Confidence {
		t.Fatalf("expected deterministic results, got %+v then %+v", first, second)
	}
}

func TestEstimateConfidenceBounds(t *testing.T) {
	t.Parallel()
	oracle := estimate.NewStatic()
	for _, hint := range []string{"dal", "roti", "biryani with raita", "something else entirely", "oats"} {
		result, err := oracle.Estimate(context.Background(), hint)
		if err != nil {
			t.Fatalf("estimate %q: %v", hint, err)
		}
		if result.Confidence <= 0 || result.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %.3f", hint, result.Confidence)
		}
	}
}
