package nutrilog

import (
	"fmt"
	"time"

	"github.com/etnz/nutrilog/date"
)

// MealType is the meal slot an entry is logged against.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snacks    MealType = "snacks"
)

// MealTypes lists every meal slot in the order of a day.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snacks}

// ParseMealType parses a meal slot name.
func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q want one of %v", ErrInvalidMealType, s, MealTypes)
	}
	return m, nil
}

// Valid reports whether m is one of the four meal slots.
func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snacks:
		return true
	default:
		return false
	}
}

func (m MealType) String() string { return string(m) }

// MealEntry is a logged serving of a food.
//
// Food is a copy of the catalog food at the time the entry was created, so
// that the entry keeps its nutrition values whatever happens to the catalog.
// Date is the day the entry counts for, Timestamp is only informative.
type MealEntry struct {
	ID        string
	FoodID    string
	Food      Food
	Servings  Quantity
	MealType  MealType
	Date      date.Date
	Timestamp time.Time
}

// Nutrients returns the nutrition values of the entry: the food snapshot
// values times the number of servings.
func (e MealEntry) Nutrients() Nutrients { return e.Food.Nutrients.Mul(e.Servings) }

func (e MealEntry) String() string {
	return fmt.Sprintf("%s %s: %s x %s", e.Date, e.MealType, e.Servings, e.Food.Name)
}

// validServings converts a serving multiplier, it must be a positive finite number.
func validServings(servings float64) (Quantity, error) {
	q, err := FiniteQ(servings)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %w", ErrInvalidServings, err)
	}
	if !q.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: %v must be positive", ErrInvalidServings, servings)
	}
	return q, nil
}
