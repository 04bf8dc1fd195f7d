package nutrilog

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/nutrilog/date"
)

// Ledger represents the list of meal entries, in insertion order.
//
// Entry ids are unique in a Ledger.
type Ledger struct {
	entries []MealEntry
	index   map[string]int // index entries by id
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make([]MealEntry, 0),
		index:   make(map[string]int),
	}
}

// Append adds entries at the end of the ledger. It fails, leaving the ledger
// untouched, if an entry id is empty or already used.
func (l *Ledger) Append(entries ...MealEntry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("meal entry without id: %v", e)
		}
		if _, exists := l.index[e.ID]; exists || seen[e.ID] {
			return fmt.Errorf("duplicate meal entry id %q", e.ID)
		}
		seen[e.ID] = true
	}
	for _, e := range entries {
		l.index[e.ID] = len(l.entries)
		l.entries = append(l.entries, e)
	}
	return nil
}

// Entry returns the entry with that id.
func (l *Ledger) Entry(id string) (MealEntry, error) {
	i, ok := l.index[id]
	if !ok {
		return MealEntry{}, fmt.Errorf("meal entry %q: %w", id, ErrNotFound)
	}
	return l.entries[i], nil
}

// SetServings replaces the servings of an entry and returns the updated entry.
func (l *Ledger) SetServings(id string, servings Quantity) (MealEntry, error) {
	i, ok := l.index[id]
	if !ok {
		return MealEntry{}, fmt.Errorf("meal entry %q: %w", id, ErrNotFound)
	}
	l.entries[i].Servings = servings
	return l.entries[i], nil
}

// Remove deletes the entry with that id. It reports whether an entry was
// removed, removing an unknown id is a no-op.
func (l *Ledger) Remove(id string) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	delete(l.index, id)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].ID] = j
	}
	return true
}

// ForDate returns the entries of that day in insertion order.
func (l *Ledger) ForDate(on date.Date) []MealEntry {
	found := make([]MealEntry, 0)
	for _, e := range l.entries {
		if e.Date == on {
			found = append(found, e)
		}
	}
	return found
}

// Entries returns an iterator that yields each entry in insertion order.
func (l *Ledger) Entries() iter.Seq[MealEntry] {
	return func(yield func(MealEntry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Days returns the distinct days that have entries, in ascending order.
func (l *Ledger) Days() []date.Date {
	set := make(map[date.Date]bool)
	for _, e := range l.entries {
		set[e.Date] = true
	}
	days := make([]date.Date, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b date.Date) int { return a.Time().Compare(b.Time()) })
	return days
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }
