package nutrilog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/etnz/nutrilog/date"
)

// StorageKey is the key of the persisted state in the Storage.
const StorageKey = "food-storage"

// Storage is a durable key-value store. GetItem reports a missing key with
// an error wrapping fs.ErrNotExist.
type Storage interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
}

// Store owns the food catalog, the meal ledger and the goals of a user.
//
// All mutations go through its methods. A mutation is applied in memory
// first, then the whole state is written to the Storage. A failed write is
// logged and reported by Save, it never undoes the mutation.
//
// A Store is meant to be used by a single goroutine.
type Store struct {
	storage Storage // may be nil, then nothing is persisted
	logger  *zap.Logger
	now     func() time.Time

	catalog *Catalog
	ledger  *Ledger
	goals   Goals

	saveErr error // last persistence failure
}

// Open creates a store from the state saved in storage. It never fails: a
// missing or malformed state is logged and replaced by the seed catalog, an
// empty ledger and the default goals. storage and logger can be nil.
func Open(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
	s.reset()
	if storage == nil {
		return s
	}

	data, err := storage.GetItem(StorageKey)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no saved state, starting from defaults", zap.String("key", StorageKey))
		return s
	case err != nil:
		logger.Error("could not read saved state, starting from defaults", zap.String("key", StorageKey), zap.Error(err))
		return s
	}

	state, err := DecodeState(bytes.NewReader(data))
	if err != nil {
		logger.Warn("ignoring saved state", zap.String("key", StorageKey), zap.Error(err))
		return s
	}
	s.restore(state)
	logger.Debug("state loaded",
		zap.Int("foods", s.catalog.Len()),
		zap.Int("entries", s.ledger.Len()))
	return s
}

// reset installs the default state.
func (s *Store) reset() {
	seed, err := SeedFoods()
	if err != nil {
		s.logger.Error("invalid seed catalog", zap.Error(err))
	}
	s.catalog = NewCatalog(seed...)
	s.ledger = NewLedger()
	s.goals = DefaultGoals()
}

// restore installs a decoded state on top of the seed catalog. Saved foods
// that are not seed foods are restored as custom foods with their ids.
func (s *Store) restore(state State) {
	for _, f := range state.Foods {
		if _, err := s.catalog.Food(f.ID); err == nil {
			continue // seed foods are rebuilt from the binary
		}
		f.IsCustom = true
		s.catalog.insert(f)
	}
	// DecodeState already rejected duplicate ids.
	if err := s.ledger.Append(state.MealEntries...); err != nil {
		s.logger.Error("could not restore meal entries", zap.Error(err))
	}
	s.goals = state.UserGoals
}

// State returns a copy of the state to persist.
func (s *Store) State() State {
	return State{
		Foods:       slices.Collect(s.catalog.Foods()),
		MealEntries: slices.Collect(s.ledger.Entries()),
		UserGoals:   s.goals,
	}
}

// persist writes the state after a mutation, failures are logged and kept for Save.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	var buf bytes.Buffer
	if err := EncodeState(&buf, s.State()); err != nil {
		s.saveErr = err
		s.logger.Error("could not encode state", zap.Error(err))
		return
	}
	if err := s.storage.SetItem(StorageKey, buf.Bytes()); err != nil {
		s.saveErr = fmt.Errorf("could not save state: %w", err)
		s.logger.Error("could not save state", zap.String("key", StorageKey), zap.Error(err))
		return
	}
	s.saveErr = nil
}

// Save writes the state now and reports any persistence failure.
func (s *Store) Save() error {
	s.persist()
	return s.saveErr
}

// Err returns the last persistence failure, or nil if the last write succeeded.
func (s *Store) Err() error { return s.saveErr }

// SetClock replaces the clock used to date new entries.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Today returns the day new entries are logged on.
func (s *Store) Today() date.Date { return date.FromTime(s.now()) }

// AddFood adds a custom food to the catalog and returns it as stored, see Catalog.Add.
func (s *Store) AddFood(f Food) (Food, error) {
	if err := f.Validate(); err != nil {
		return Food{}, err
	}
	f = s.catalog.Add(f)
	s.logger.Debug("food added", zap.String("id", f.ID), zap.String("name", f.Name))
	s.persist()
	return f, nil
}

// GetFood returns the food with that id, or an error wrapping ErrNotFound.
func (s *Store) GetFood(id string) (Food, error) { return s.catalog.Food(id) }

// SearchFoods returns the foods whose name contains query, see Catalog.Search.
func (s *Store) SearchFoods(query string) []Food { return s.catalog.Search(query) }

// CustomFoods returns the user added foods.
func (s *Store) CustomFoods() []Food { return s.catalog.Custom() }

// AddEntry logs servings of a food for a meal of today.
func (s *Store) AddEntry(foodID string, meal MealType, servings float64) (MealEntry, error) {
	food, err := s.catalog.Food(foodID)
	if err != nil {
		return MealEntry{}, err
	}
	if !meal.Valid() {
		return MealEntry{}, fmt.Errorf("%w %q", ErrInvalidMealType, meal)
	}
	q, err := validServings(servings)
	if err != nil {
		return MealEntry{}, err
	}
	now := s.now()
	e := MealEntry{
		ID:        newEntryID(),
		FoodID:    food.ID,
		Food:      food,
		Servings:  q,
		MealType:  meal,
		Date:      date.FromTime(now),
		Timestamp: now,
	}
	if err := s.ledger.Append(e); err != nil {
		return MealEntry{}, err
	}
	s.logger.Debug("entry added", zap.String("id", e.ID), zap.String("food", food.ID),
		zap.Stringer("meal", meal), zap.Stringer("servings", q), zap.Stringer("date", e.Date))
	s.persist()
	return e, nil
}

// UpdateEntry replaces the servings of an entry. Nothing else changes.
func (s *Store) UpdateEntry(id string, servings float64) (MealEntry, error) {
	if _, err := s.ledger.Entry(id); err != nil {
		return MealEntry{}, err
	}
	q, err := validServings(servings)
	if err != nil {
		return MealEntry{}, err
	}
	e, err := s.ledger.SetServings(id, q)
	if err != nil {
		return MealEntry{}, err
	}
	s.logger.Debug("entry updated", zap.String("id", id), zap.Stringer("servings", q))
	s.persist()
	return e, nil
}

// RemoveEntry deletes an entry. Removing an unknown id does nothing.
func (s *Store) RemoveEntry(id string) {
	if !s.ledger.Remove(id) {
		return
	}
	s.logger.Debug("entry removed", zap.String("id", id))
	s.persist()
}

// Entry returns the entry with that id, or an error wrapping ErrNotFound.
func (s *Store) Entry(id string) (MealEntry, error) { return s.ledger.Entry(id) }

// EntriesForDate returns the entries of a day in the order they were logged.
func (s *Store) EntriesForDate(on date.Date) []MealEntry { return s.ledger.ForDate(on) }

// LoggedDays returns the days with at least one entry, oldest first.
func (s *Store) LoggedDays() []date.Date { return s.ledger.Days() }

// Goals returns the current goals.
func (s *Store) Goals() Goals { return s.goals }

// UpdateGoals replaces the goals. Invalid goals are rejected as a whole and
// the current goals are kept.
func (s *Store) UpdateGoals(candidate Goals) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	s.goals = candidate
	s.logger.Debug("goals updated",
		zap.Float64("calories", candidate.Calories),
		zap.Float64("protein", candidate.Protein),
		zap.Float64("carbs", candidate.Carbs),
		zap.Float64("fat", candidate.Fat))
	s.persist()
	return nil
}

// PatchGoals updates some goals, keeping the others. The resulting goals are
// validated as a whole like UpdateGoals.
func (s *Store) PatchGoals(p GoalsPatch) (Goals, error) {
	g := p.Apply(s.goals)
	if err := s.UpdateGoals(g); err != nil {
		return s.goals, err
	}
	return g, nil
}

// DailySummary computes the summary of a day from the current entries.
func (s *Store) DailySummary(on date.Date) DailySummary {
	return Summarize(on, s.ledger.ForDate(on))
}

// RangeSummaries computes the summary of each day, in the given order.
func (s *Store) RangeSummaries(days []date.Date) []DailySummary {
	summaries := make([]DailySummary, 0, len(days))
	for _, d := range days {
		summaries = append(summaries, s.DailySummary(d))
	}
	return summaries
}

// History returns the summaries of the days with entries among today and
// the n previous days, newest first.
func (s *Store) History(n int) []DailySummary {
	days := date.PreviousDaysFrom(s.Today(), n)
	var history []DailySummary
	for _, summary := range slices.Backward(s.RangeSummaries(days)) {
		if summary.HasEntries() {
			history = append(history, summary)
		}
	}
	return history
}
