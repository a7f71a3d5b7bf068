package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

// templateDoc is the lenient wire form of a template, mirroring entryDoc.
type templateDoc struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	MealType string  `json:"mealType"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Notes    string  `json:"notes"`
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func (s *Store) loadTemplates(ctx context.Context) error {
	data, err := s.backend.Get(ctx, keyTemplates)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	var docs []templateDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		s.log.Warn("template document unreadable, starting empty", "error", err)
		return nil
	}
	templates := make([]model.Template, 0, len(docs))
	for _, doc := range docs {
		tpl := sanitizeTemplate(doc)
		if tpl.Name == "" {
			continue
		}
		templates = append(templates, tpl)
	}
	s.templates = templates
	return nil
}

func sanitizeTemplate(doc templateDoc) model.Template {
	tpl := model.Template{
		Name:     strings.TrimSpace(doc.Name),
		Title:    strings.TrimSpace(doc.Title),
		MealType: model.NormalizeMealType(doc.MealType),
		Calories: model.ClampFloat(doc.Calories),
		Protein:  model.ClampFloat(doc.Protein),
		Carbs:    model.ClampFloat(doc.Carbs),
		Fat:      model.ClampFloat(doc.Fat),
		Fiber:    model.ClampFloat(doc.Fiber),
		Notes:    strings.TrimSpace(doc.Notes),
	}
	if tpl.Title == "" {
		tpl.Title = tpl.Name
	}
	return tpl
}

// persistTemplates requires the write lock.
func (s *Store) persistTemplates(ctx context.Context) error {
	list := s.templates
	if list == nil {
		list = []model.Template{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode templates: %w", err)
	}
	if err := s.backend.Set(ctx, keyTemplates, data); err != nil {
		return fmt.Errorf("persist templates: %w", err)
	}
	return nil
}

// Templates returns a copy of the saved templates in insertion order.
func (s *Store) Templates() []model.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Template looks up a template by name, case-insensitively.
func (s *Store) Template(name string) (model.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.templateIndex(name)
	if idx < 0 {
		return model.Template{}, false
	}
	return s.templates[idx], true
}

// SaveTemplate stores a template, replacing any existing one with the same
// name. Macros are clamped like entry macros.
func (s *Store) SaveTemplate(ctx context.Context, tpl model.Template) (model.Template, error) {
	tpl.Name = strings.TrimSpace(tpl.Name)
	if tpl.Name == "" {
		return model.Template{}, fmt.Errorf("template name is required")
	}
	tpl.Title = strings.TrimSpace(tpl.Title)
	if tpl.Title == "" {
		tpl.Title = tpl.Name
	}
	tpl.MealType = model.NormalizeMealType(tpl.MealType)
	tpl.Notes = strings.TrimSpace(tpl.Notes)
	tpl.Calories = model.ClampInt(tpl.Calories)
	tpl.Protein = model.ClampInt(tpl.Protein)
	tpl.Carbs = model.ClampInt(tpl.Carbs)
	tpl.Fat = model.ClampInt(tpl.Fat)
	tpl.Fiber = model.ClampInt(tpl.Fiber)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.templates
	next := make([]model.Template, len(prev))
	copy(next, prev)
	if idx := s.templateIndex(tpl.Name); idx >= 0 {
		next[idx] = tpl
	} else {
		next = append(next, tpl)
	}
	s.templates = next
	if err := s.persistTemplates(ctx); err != nil {
		s.templates = prev
		return model.Template{}, err
	}
	s.log.Debug("template saved", "name", tpl.Name)
	return tpl, nil
}

// RemoveTemplate deletes a template by name. A missing name is a no-op.
func (s *Store) RemoveTemplate(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.templateIndex(name)
	if idx < 0 {
		return false, nil
	}
	prev := s.templates
	next := make([]model.Template, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.templates = next
	if err := s.persistTemplates(ctx); err != nil {
		s.templates = prev
		return true, err
	}
	s.log.Debug("template removed", "name", name)
	return true, nil
}

// LogTemplate adds a new entry built from the named template, stamped with
// the active date like any other add.
func (s *Store) LogTemplate(ctx context.Context, name string) (model.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.templateIndex(name)
	if idx < 0 {
		return model.Entry{}, false, nil
	}
	tpl := s.templates[idx]
	entry, err := s.add(ctx, AddInput{
		Title:    tpl.Title,
		MealType: tpl.MealType,
		Notes:    tpl.Notes,
		Calories: tpl.Calories,
		Protein:  tpl.Protein,
		Carbs:    tpl.Carbs,
		Fat:      tpl.Fat,
		Fiber:    tpl.Fiber,
	})
	if err != nil {
		return model.Entry{}, true, err
	}
	return entry, true, nil
}

// templateIndex requires at least the read lock.
func (s *Store) templateIndex(name string) int {
	norm := normalizeName(name)
	for i, tpl := range s.templates {
		if normalizeName(tpl.Name) == norm {
			return i
		}
	}
	return -1
}
