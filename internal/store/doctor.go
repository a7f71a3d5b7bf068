package store

import (
	"context"
	"encoding/json"
	"math"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/kv"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

// DoctorReport summarizes raw document health. Invalid entries are ones a
// load would silently repair; corrupt documents are ones a load would
// replace with an empty state. LegacyLog means the next load migrates an
// old-format log; StaleLegacy means a superseded key survived an
// interrupted migration and the next load removes it.
type DoctorReport struct {
	Keys           []string `json:"keys"`
	Entries        int      `json:"entries"`
	InvalidEntries int      `json:"invalidEntries"`
	DuplicateIDs   int      `json:"duplicateIds"`
	Templates      int      `json:"templates"`
	TargetSet      bool     `json:"targetSet"`
	LegacyLog      bool     `json:"legacyLog"`
	StaleLegacy    bool     `json:"staleLegacy"`
	CorruptDocs    []string `json:"corruptDocs,omitempty"`
}

// RunDoctor inspects the backend's raw documents without sanitizing or
// migrating them, so it reports what the next load will do.
func RunDoctor(ctx context.Context, backend kv.Backend) (DoctorReport, error) {
	var report DoctorReport

	keys, err := backend.Keys(ctx)
	if err != nil {
		return report, err
	}
	report.Keys = keys

	raw, err := backend.Get(ctx, keyEntries)
	if err != nil {
		return report, err
	}
	if raw != nil {
		docs, err := decodeEntryDocs(raw)
		if err != nil {
			report.CorruptDocs = append(report.CorruptDocs, keyEntries)
		} else {
			report.Entries = len(docs)
			seen := make(map[string]bool, len(docs))
			for _, doc := range docs {
				if seen[doc.ID] {
					report.DuplicateIDs++
				}
				seen[doc.ID] = true
				if !entryDocHealthy(doc) {
					report.InvalidEntries++
				}
			}
		}
	}

	for _, v := range entryDocVersions[1:] {
		legacy, err := backend.Get(ctx, v.key)
		if err != nil {
			return report, err
		}
		if legacy == nil {
			continue
		}
		if raw != nil {
			report.StaleLegacy = true
		} else {
			report.LegacyLog = true
		}
	}

	rawTarget, err := backend.Get(ctx, keyTarget)
	if err != nil {
		return report, err
	}
	if rawTarget != nil {
		report.TargetSet = true
		if _, err := decodeTargetDoc(rawTarget); err != nil {
			report.CorruptDocs = append(report.CorruptDocs, keyTarget)
		}
	}

	rawTemplates, err := backend.Get(ctx, keyTemplates)
	if err != nil {
		return report, err
	}
	if rawTemplates != nil {
		var docs []templateDoc
		if err := json.Unmarshal(rawTemplates, &docs); err != nil {
			report.CorruptDocs = append(report.CorruptDocs, keyTemplates)
		} else {
			report.Templates = len(docs)
		}
	}
	return report, nil
}

func entryDocHealthy(doc entryDoc) bool {
	if doc.ID == "" || !dates.Valid(doc.Date) {
		return false
	}
	for _, v := range []float64{doc.Calories, doc.Protein, doc.Carbs, doc.Fat, doc.Fiber} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		if v < 0 || v > model.MaxMacroUnits || v != math.Trunc(v) {
			return false
		}
	}
	return true
}
