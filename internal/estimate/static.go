package estimate

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Static matches hints against a built-in table of common meals. It needs no
// network and always answers; unmatched hints get a low-confidence generic
// guess the caller can discard.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

type foodProfile struct {
	label   string
	tokens  []string
	kcal    int
	protein int
	carbs   int
	fat     int
	fiber   int
}

// foodTable is ordered; on a score tie the earlier profile wins.
var foodTable = []foodProfile{
	{label: "Dal", tokens: []string{"dal", "lentil", "lentils"}, kcal: 180, protein: 12, carbs: 24, fat: 4, fiber: 6},
	{label: "Roti", tokens: []string{"roti", "chapati", "phulka"}, kcal: 200, protein: 6, carbs: 28, fat: 4, fiber: 3},
	{label: "Steamed rice", tokens: []string{"rice", "chawal"}, kcal: 210, protein: 4, carbs: 45, fat: 1, fiber: 1},
	{label: "Dosa", tokens: []string{"dosa"}, kcal: 180, protein: 4, carbs: 30, fat: 5, fiber: 2},
	{label: "Idli", tokens: []string{"idli", "idlis"}, kcal: 140, protein: 4, carbs: 28, fat: 1, fiber: 2},
	{label: "Poha", tokens: []string{"poha"}, kcal: 250, protein: 5, carbs: 40, fat: 8, fiber: 3},
	{label: "Paneer tikka", tokens: []string{"paneer", "tikka"}, kcal: 320, protein: 22, carbs: 10, fat: 20, fiber: 2},
	{label: "Chicken curry", tokens: []string{"chicken", "curry", "murgh"}, kcal: 290, protein: 27, carbs: 8, fat: 16, fiber: 2},
	{label: "Chole", tokens: []string{"chole", "chana", "chickpea", "chickpeas"}, kcal: 280, protein: 12, carbs: 40, fat: 8, fiber: 10},
	{label: "Rajma", tokens: []string{"rajma", "kidney", "beans"}, kcal: 260, protein: 12, carbs: 38, fat: 6, fiber: 9},
	{label: "Biryani", tokens: []string{"biryani"}, kcal: 480, protein: 18, carbs: 62, fat: 16, fiber: 4},
	{label: "Samosa", tokens: []string{"samosa", "samosas"}, kcal: 260, protein: 5, carbs: 30, fat: 14, fiber: 3},
	{label: "Khichdi", tokens: []string{"khichdi"}, kcal: 320, protein: 11, carbs: 52, fat: 7, fiber: 6},
	{label: "Green salad", tokens: []string{"salad", "greens"}, kcal: 120, protein: 4, carbs: 12, fat: 6, fiber: 4},
	{label: "Omelette", tokens: []string{"omelette", "omelet", "egg", "eggs"}, kcal: 220, protein: 14, carbs: 2, fat: 16, fiber: 0},
	{label: "Oats porridge", tokens: []string{"oats", "oatmeal", "porridge"}, kcal: 280, protein: 10, carbs: 45, fat: 6, fiber: 6},
	{label: "Curd", tokens: []string{"curd", "yogurt", "dahi", "raita"}, kcal: 100, protein: 6, carbs: 8, fat: 5, fiber: 0},
	{label: "Masala chai", tokens: []string{"chai", "tea"}, kcal: 60, protein: 2, carbs: 8, fat: 2, fiber: 0},
	{label: "Fruit smoothie", tokens: []string{"smoothie", "shake"}, kcal: 210, protein: 6, carbs: 38, fat: 3, fiber: 4},
}

var fallbackResult = Result{
	Label:      "Mixed meal",
	Calories:   250,
	Protein:    10,
	Carbs:      30,
	Fat:        9,
	Fiber:      4,
	Confidence: 0.30,
	Reasons:    []string{"no profile matched the hint"},
}

// photo filename noise that should not count against the match
var fillerTokens = map[string]bool{
	"img": true, "image": true, "photo": true, "pic": true, "dsc": true,
	"the": true, "a": true, "of": true, "with": true, "and": true,
	"my": true, "meal": true, "food": true, "lunch": true, "dinner": true,
	"breakfast": true, "snack": true,
}

var photoExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".heic"}

func (s *Static) Estimate(_ context.Context, hint string) (Result, error) {
	if strings.TrimSpace(hint) == "" {
		return Result{}, ErrEmptyHint
	}
	hintTokens := tokenize(hint)
	if len(hintTokens) == 0 {
		return fallbackResult, nil
	}

	hintSet := map[string]bool{}
	for _, t := range hintTokens {
		hintSet[t] = true
	}

	bestScore := 0.0
	bestIdx := -1
	for i, profile := range foodTable {
		matched := 0
		for _, t := range profile.tokens {
			if hintSet[t] {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		// a profile's tokens are aliases, any hit identifies the dish;
		// coverage of the hint decides how sure the identification is
		hintCoverage := float64(matched) / float64(len(hintTokens))
		score := 0.6 + 0.4*hintCoverage
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return fallbackResult, nil
	}

	profile := foodTable[bestIdx]
	confidence := clamp01(0.25 + 0.7*bestScore)
	return Result{
		Label:      profile.label,
		Calories:   profile.kcal,
		Protein:    profile.protein,
		Carbs:      profile.carbs,
		Fat:        profile.fat,
		Fiber:      profile.fiber,
		Confidence: confidence,
		Verified:   confidence >= DefaultVerifiedMinScore,
		Reasons: []string{
			fmt.Sprintf("matched=%s", profile.label),
			fmt.Sprintf("token_overlap=%.2f", bestScore),
			fmt.Sprintf("confidence=%.2f", confidence),
		},
	}, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
var numeric = regexp.MustCompile(`^[0-9]+$`)

// tokenize lowercases the hint, strips photo extensions and separators, and
// drops filler words, duplicates, and bare numbers (filename timestamps).
func tokenize(s string) []string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	for _, ext := range photoExtensions {
		s = strings.TrimSuffix(s, ext)
	}
	s = nonAlnum.ReplaceAllString(s, " ")
	parts := strings.Fields(s)
	seen := map[string]bool{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || seen[p] || fillerTokens[p] || numeric.MatchString(p) {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*1000) / 1000
}
