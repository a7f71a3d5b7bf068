package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

// Document keys in the kv backend. The entry log is versioned: older
// generations are decoded on load, rewritten under the current key, and
// their keys deleted.
const (
	keyEntries   = "entries.v2"
	keyTarget    = "target"
	keyTemplates = "templates"
)

type docVersion struct {
	version int
	name    string
	key     string
}

// entryDocVersions lists the entry log generations, newest first. Version 1
// predates the fiber field; decoding defaults it to zero, which is the
// backfill the upgrade needs.
var entryDocVersions = []docVersion{
	{version: 2, name: "fiber_tracking", key: keyEntries},
	{version: 1, name: "initial_log", key: "entries"},
}

// entryDoc is the lenient wire form of an entry. Macros decode as floats so
// documents written by other tools survive the trip; sanitizeDoc rounds
// and clamps them into model range.
type entryDoc struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Title    string  `json:"title"`
	MealType string  `json:"mealType"`
	Photo    string  `json:"photo"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Notes    string  `json:"notes"`
}

// decodeEntryDocs parses an entry log document. The top-level value must be
// a JSON array; anything else fails before any entry is interpreted.
func decodeEntryDocs(data []byte) ([]entryDoc, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}
	var docs []entryDoc
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, fmt.Errorf("decode entry log: %w", err)
	}
	return docs, nil
}

type targetDoc struct {
	Kcal    *int `json:"kcal"`
	Protein *int `json:"protein"`
	Carbs   *int `json:"carbs"`
	Fat     *int `json:"fat"`
	Fiber   *int `json:"fiber"`
}

// decodeTargetDoc overlays a stored target document onto the defaults, so a
// document missing a field keeps that field's default.
func decodeTargetDoc(data []byte) (model.Target, error) {
	target := model.DefaultTarget()
	var doc targetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return target, fmt.Errorf("decode target: %w", err)
	}
	if doc.Kcal != nil {
		target.Kcal = *doc.Kcal
	}
	if doc.Protein != nil {
		target.Protein = *doc.Protein
	}
	if doc.Carbs != nil {
		target.Carbs = *doc.Carbs
	}
	if doc.Fat != nil {
		target.Fat = *doc.Fat
	}
	if doc.Fiber != nil {
		target.Fiber = *doc.Fiber
	}
	return target, nil
}
