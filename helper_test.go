package nutrilog

import (
	"testing"
	"time"

	"github.com/etnz/nutrilog/date"
	"github.com/etnz/nutrilog/storage"
)

// testFood is the food of the end-to-end scenario.
var testFood = Food{
	ID:          "test-food",
	Name:        "Test Food",
	Nutrients:   N(100, 5, 10, 2),
	ServingUnit: "portion",
	ServingSize: Q(1),
}

// newTestStore returns a store backed by memory whose clock is noon (UTC) of day.
func newTestStore(t *testing.T, day string) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s := Open(mem, nil)
	s.catalog.insert(testFood)
	setDay(s, day)
	return s, mem
}

// setDay moves the store clock to noon (UTC) of day.
func setDay(s *Store, day string) {
	noon := date.MustParse(day).Time().Add(12 * time.Hour)
	s.now = func() time.Time { return noon }
}

func mustAddEntry(t *testing.T, s *Store, foodID string, meal MealType, servings float64) MealEntry {
	t.Helper()
	e, err := s.AddEntry(foodID, meal, servings)
	if err != nil {
		t.Fatalf("AddEntry(%q, %v, %v) error = %v", foodID, meal, servings, err)
	}
	return e
}
