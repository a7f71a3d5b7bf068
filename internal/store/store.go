// Package store implements the entry log: an in-memory collection of meal
// entries, targets, and templates backed by whole-document writes to a kv
// backend. Every mutation persists before it returns, so the backend always
// holds the latest state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/kv"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
)

const timeLayout = "3:04 PM"

// ErrNotAnArray rejects import payloads whose top-level value is not a JSON
// array. The store is left untouched when this is returned.
var ErrNotAnArray = errors.New("import data is not a JSON array of entries")

type Store struct {
	mu      sync.RWMutex
	backend kv.Backend
	log     *slog.Logger
	now     func() time.Time
	newID   func() string

	entries    []model.Entry
	target     model.Target
	templates  []model.Template
	activeDate string
}

// Options tune an opened store. Zero values fall back to slog.Default,
// time.Now, and uuid.NewString.
type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
	NewID  func() string
}

type AddInput struct {
	Title    string
	MealType string
	Photo    string
	Notes    string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	Fiber    int
}

// EntryPatch updates an entry in place. Nil fields are left alone; id, date,
// and time are not patchable.
type EntryPatch struct {
	Title    *string
	MealType *string
	Photo    *string
	Notes    *string
	Calories *int
	Protein  *int
	Carbs    *int
	Fat      *int
	Fiber    *int
}

type TargetPatch struct {
	Kcal    *int
	Protein *int
	Carbs   *int
	Fat     *int
	Fiber   *int
}

// Open loads all documents from the backend and returns a ready store.
// A corrupt document is logged and replaced with an empty one rather than
// failing the open; backend errors are returned as-is.
func Open(ctx context.Context, backend kv.Backend, opts Options) (*Store, error) {
	if backend == nil {
		return nil, errors.New("kv backend is required")
	}
	s := &Store{
		backend: backend,
		log:     opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
		entries: make([]model.Entry, 0),
		target:  model.DefaultTarget(),
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.activeDate = dates.Today(s.now())

	if err := s.loadEntries(ctx); err != nil {
		return nil, fmt.Errorf("load entry log: %w", err)
	}
	if err := s.loadTarget(ctx); err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}
	if err := s.loadTemplates(ctx); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return s, nil
}

func (s *Store) loadEntries(ctx context.Context) error {
	current := entryDocVersions[0].version
	for _, gen := range entryDocVersions {
		data, err := s.backend.Get(ctx, gen.key)
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		docs, err := decodeEntryDocs(data)
		if err != nil {
			s.log.Warn("entry log unreadable, starting empty", "key", gen.key, "error", err)
			return nil
		}
		today := dates.Today(s.now())
		entries := make([]model.Entry, 0, len(docs))
		for _, doc := range docs {
			entries = append(entries, s.sanitizeDoc(doc, today))
		}
		s.entries = entries
		if gen.version < current {
			s.log.Info("entry log migrated", "from", gen.name, "version", gen.version, "entries", len(entries))
			if err := s.persistEntries(ctx); err != nil {
				return err
			}
		}
		// A load interrupted between persisting the current document and
		// deleting the superseded keys leaves stale generations behind, so
		// every successful load drops them.
		if err := s.dropLegacyKeys(ctx); err != nil {
			return err
		}
		return nil
	}
	return nil
}

func (s *Store) dropLegacyKeys(ctx context.Context) error {
	for _, gen := range entryDocVersions[1:] {
		if err := s.backend.Delete(ctx, gen.key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadTarget(ctx context.Context) error {
	data, err := s.backend.Get(ctx, keyTarget)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	target, err := decodeTargetDoc(data)
	if err != nil {
		s.log.Warn("target document unreadable, using defaults", "error", err)
		return nil
	}
	s.target = target
	return nil
}

// sanitizeDoc turns a wire entry into a valid model entry: defaults for
// missing fields, normalized meal type, macros clamped into range.
func (s *Store) sanitizeDoc(doc entryDoc, fallbackDate string) model.Entry {
	entry := model.Entry{
		ID:       strings.TrimSpace(doc.ID),
		Date:     strings.TrimSpace(doc.Date),
		Time:     strings.TrimSpace(doc.Time),
		Title:    strings.TrimSpace(doc.Title),
		MealType: model.NormalizeMealType(doc.MealType),
		Photo:    strings.TrimSpace(doc.Photo),
		Calories: model.ClampFloat(doc.Calories),
		Protein:  model.ClampFloat(doc.Protein),
		Carbs:    model.ClampFloat(doc.Carbs),
		Fat:      model.ClampFloat(doc.Fat),
		Fiber:    model.ClampFloat(doc.Fiber),
		Notes:    strings.TrimSpace(doc.Notes),
	}
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	if !dates.Valid(entry.Date) {
		entry.Date = fallbackDate
	}
	if entry.Time == "" {
		entry.Time = s.now().Format(timeLayout)
	}
	if entry.Title == "" {
		entry.Title = model.DefaultTitle
	}
	return entry
}

// persistEntries writes the full entry log. Callers hold the write lock.
func (s *Store) persistEntries(ctx context.Context) error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode entry log: %w", err)
	}
	if err := s.backend.Set(ctx, keyEntries, data); err != nil {
		return fmt.Errorf("persist entry log: %w", err)
	}
	return nil
}

func (s *Store) persistTarget(ctx context.Context) error {
	data, err := json.Marshal(s.target)
	if err != nil {
		return fmt.Errorf("encode target: %w", err)
	}
	if err := s.backend.Set(ctx, keyTarget, data); err != nil {
		return fmt.Errorf("persist target: %w", err)
	}
	return nil
}

// ActiveDate returns the day new entries are stamped with.
func (s *Store) ActiveDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeDate
}

// SetActiveDate moves the store to another day. The date must be a real
// calendar date in YYYY-MM-DD form.
func (s *Store) SetActiveDate(date string) error {
	if _, err := dates.Parse(date); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeDate = date
	return nil
}

// PreviousDay shifts the active date one day back and returns it.
func (s *Store) PreviousDay() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, err := dates.PreviousDay(s.activeDate)
	if err != nil {
		return "", err
	}
	s.activeDate = day
	return day, nil
}

// NextDay shifts the active date one day forward and returns it.
func (s *Store) NextDay() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, err := dates.NextDay(s.activeDate)
	if err != nil {
		return "", err
	}
	s.activeDate = day
	return day, nil
}

// Entries returns a copy of the full log, newest entry first.
func (s *Store) Entries() []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntriesOn returns the entries logged on the given day, newest first.
func (s *Store) EntriesOn(date string) []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Entry
	for _, e := range s.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Entry looks up a single entry by id.
func (s *Store) Entry(id string) (model.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// Add prepends a new entry stamped with the active date and the current
// clock time, persists the log, and returns the stored entry. The log
// keeps the newest entry first.
func (s *Store) Add(ctx context.Context, in AddInput) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, in)
}

// add requires the write lock.
func (s *Store) add(ctx context.Context, in AddInput) (model.Entry, error) {
	entry := model.Entry{
		ID:       s.newID(),
		Date:     s.activeDate,
		Time:     s.now().Format(timeLayout),
		Title:    strings.TrimSpace(in.Title),
		MealType: model.NormalizeMealType(in.MealType),
		Photo:    strings.TrimSpace(in.Photo),
		Calories: model.ClampInt(in.Calories),
		Protein:  model.ClampInt(in.Protein),
		Carbs:    model.ClampInt(in.Carbs),
		Fat:      model.ClampInt(in.Fat),
		Fiber:    model.ClampInt(in.Fiber),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if entry.Title == "" {
		entry.Title = model.DefaultTitle
	}
	s.entries = append([]model.Entry{entry}, s.entries...)
	if err := s.persistEntries(ctx); err != nil {
		s.entries = s.entries[1:]
		return model.Entry{}, err
	}
	s.log.Debug("entry added", "id", entry.ID, "date", entry.Date, "title", entry.Title)
	return entry, nil
}

// Update applies a patch to the entry with the given id. The second return
// reports whether the entry existed; a missing id is not an error.
func (s *Store) Update(ctx context.Context, id string, patch EntryPatch) (model.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Entry{}, false, nil
	}
	prev := s.entries[idx]
	next := prev
	if patch.Title != nil {
		next.Title = strings.TrimSpace(*patch.Title)
		if next.Title == "" {
			next.Title = model.DefaultTitle
		}
	}
	if patch.MealType != nil {
		next.MealType = model.NormalizeMealType(*patch.MealType)
	}
	if patch.Photo != nil {
		next.Photo = strings.TrimSpace(*patch.Photo)
	}
	if patch.Notes != nil {
		next.Notes = strings.TrimSpace(*patch.Notes)
	}
	if patch.Calories != nil {
		next.Calories = model.ClampInt(*patch.Calories)
	}
	if patch.Protein != nil {
		next.Protein = model.ClampInt(*patch.Protein)
	}
	if patch.Carbs != nil {
		next.Carbs = model.ClampInt(*patch.Carbs)
	}
	if patch.Fat != nil {
		next.Fat = model.ClampInt(*patch.Fat)
	}
	if patch.Fiber != nil {
		next.Fiber = model.ClampInt(*patch.Fiber)
	}
	s.entries[idx] = next
	if err := s.persistEntries(ctx); err != nil {
		s.entries[idx] = prev
		return model.Entry{}, true, err
	}
	s.log.Debug("entry updated", "id", id)
	return next, true, nil
}

// Remove deletes the entry with the given id. A missing id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	prev := s.entries
	next := make([]model.Entry, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.entries = next
	if err := s.persistEntries(ctx); err != nil {
		s.entries = prev
		return true, err
	}
	s.log.Debug("entry removed", "id", id)
	return true, nil
}

// Duplicate re-logs an existing entry under the active date with a fresh id
// and a fresh time stamp. Everything else is copied verbatim.
func (s *Store) Duplicate(ctx context.Context, id string) (model.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Entry{}, false, nil
	}
	src := s.entries[idx]
	dup := src
	dup.ID = s.newID()
	dup.Date = s.activeDate
	dup.Time = s.now().Format(timeLayout)
	s.entries = append([]model.Entry{dup}, s.entries...)
	if err := s.persistEntries(ctx); err != nil {
		s.entries = s.entries[1:]
		return model.Entry{}, true, err
	}
	s.log.Debug("entry duplicated", "from", id, "id", dup.ID)
	return dup, true, nil
}

// indexOf requires at least the read lock.
func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Target returns the current daily goals.
func (s *Store) Target() model.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// SetTarget merges the patch into the current target and persists it.
func (s *Store) SetTarget(ctx context.Context, patch TargetPatch) (model.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.target
	next := prev
	if patch.Kcal != nil {
		next.Kcal = *patch.Kcal
	}
	if patch.Protein != nil {
		next.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		next.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		next.Fat = *patch.Fat
	}
	if patch.Fiber != nil {
		next.Fiber = *patch.Fiber
	}
	s.target = next
	if err := s.persistTarget(ctx); err != nil {
		s.target = prev
		return prev, err
	}
	s.log.Debug("target updated", "kcal", next.Kcal)
	return next, nil
}

// ExportJSON renders the full entry log as an indented JSON array, the same
// shape ImportJSON accepts.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

// ImportJSON replaces the entry log with the entries in data. The payload
// must be a JSON array; otherwise ErrNotAnArray is returned and the store
// keeps its current contents. Each imported entry is sanitized the same way
// an added one is.
func (s *Store) ImportJSON(ctx context.Context, data []byte) (int, error) {
	docs, err := decodeEntryDocs(data)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	today := dates.Today(s.now())
	imported := make([]model.Entry, 0, len(docs))
	for _, doc := range docs {
		imported = append(imported, s.sanitizeDoc(doc, today))
	}
	prev := s.entries
	s.entries = imported
	if err := s.persistEntries(ctx); err != nil {
		s.entries = prev
		return 0, err
	}
	s.log.Info("entry log imported", "entries", len(imported))
	return len(imported), nil
}
