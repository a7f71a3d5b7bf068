// Package estimate guesses the nutrition of a meal from a free-form hint,
// typically a dish name or a photo filename. The shipped oracle is a static
// offline table; the interface leaves room for smarter backends.
package estimate

import (
	"context"
	"errors"
)

// DefaultVerifiedMinScore is the confidence at or above which a result is
// treated as trustworthy enough to log without review.
const DefaultVerifiedMinScore = 0.80

// ErrEmptyHint is returned when there is nothing to estimate from.
var ErrEmptyHint = errors.New("estimation hint is required")

// Result is a nutrition guess. Confidence is in [0, 1]; Reasons explains
// how the score came about.
type Result struct {
	Label      string   `json:"label"`
	Calories   int      `json:"calories"`
	Protein    int      `json:"protein"`
	Carbs      int      `json:"carbs"`
	Fat        int      `json:"fat"`
	Fiber      int      `json:"fiber"`
	Confidence float64  `json:"confidence"`
	Verified   bool     `json:"verified"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Estimator resolves a hint into a nutrition guess. Implementations must be
// safe for concurrent use.
type Estimator interface {
	Estimate(ctx context.Context, hint string) (Result, error)
}
