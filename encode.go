package nutrilog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/etnz/nutrilog/date"
)

// StateVersion is the version of the persisted state layout.
const StateVersion = 0

// State is everything the store persists.
type State struct {
	Foods       []Food      `json:"foods"`
	MealEntries []MealEntry `json:"mealEntries"`
	UserGoals   Goals       `json:"userGoals"`
}

// envelope is the persisted layout: the state and the version of its layout.
type envelope struct {
	State   *State `json:"state"`
	Version int    `json:"version"`
}

// entryJSON is the persisted layout of a MealEntry. The timestamp is stored
// in milliseconds since the epoch.
type entryJSON struct {
	ID        string    `json:"id"`
	FoodID    string    `json:"foodId"`
	Food      Food      `json:"food"`
	Servings  Quantity  `json:"servings"`
	MealType  MealType  `json:"mealType"`
	Date      date.Date `json:"date"`
	Timestamp int64     `json:"timestamp"`
}

// MarshalJSON implements the json.Marshaler interface for MealEntry.
func (e MealEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		ID:        e.ID,
		FoodID:    e.FoodID,
		Food:      e.Food,
		Servings:  e.Servings,
		MealType:  e.MealType,
		Date:      e.Date,
		Timestamp: e.Timestamp.UnixMilli(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for MealEntry.
func (e *MealEntry) UnmarshalJSON(data []byte) error {
	var temp entryJSON
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = MealEntry{
		ID:        temp.ID,
		FoodID:    temp.FoodID,
		Food:      temp.Food,
		Servings:  temp.Servings,
		MealType:  temp.MealType,
		Date:      temp.Date,
		Timestamp: time.UnixMilli(temp.Timestamp).UTC(),
	}
	return nil
}

// EncodeState writes the state as a single JSON document.
func EncodeState(w io.Writer, s State) error {
	if s.Foods == nil {
		s.Foods = []Food{}
	}
	if s.MealEntries == nil {
		s.MealEntries = []MealEntry{}
	}
	data, err := json.Marshal(envelope{State: &s, Version: StateVersion})
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// DecodeState reads a state written by EncodeState and checks it can be
// restored. Every failure wraps ErrMalformedState.
func DecodeState(r io.Reader) (State, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	if env.State == nil {
		return State{}, fmt.Errorf("%w: missing state", ErrMalformedState)
	}
	if env.Version != StateVersion {
		return State{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedState, env.Version)
	}
	if err := env.State.check(); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	return *env.State, nil
}

// check verifies the invariants the store relies on.
func (s State) check() error {
	var errs error
	foods := make(map[string]bool, len(s.Foods))
	for i, f := range s.Foods {
		if f.ID == "" || foods[f.ID] {
			errs = errors.Join(errs, fmt.Errorf("food #%d: missing or duplicate id %q", i, f.ID))
		}
		foods[f.ID] = true
	}
	entries := make(map[string]bool, len(s.MealEntries))
	for i, e := range s.MealEntries {
		if e.ID == "" || entries[e.ID] {
			errs = errors.Join(errs, fmt.Errorf("meal entry #%d: missing or duplicate id %q", i, e.ID))
		}
		entries[e.ID] = true
		if !e.MealType.Valid() {
			errs = errors.Join(errs, fmt.Errorf("meal entry %q: %w %q", e.ID, ErrInvalidMealType, e.MealType))
		}
		if !e.Servings.IsPositive() {
			errs = errors.Join(errs, fmt.Errorf("meal entry %q: %w %v", e.ID, ErrInvalidServings, e.Servings))
		}
		if e.Date.IsZero() {
			errs = errors.Join(errs, fmt.Errorf("meal entry %q: missing date", e.ID))
		}
	}
	if err := s.UserGoals.Validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}
