package nutrilog

import "github.com/etnz/nutrilog/date"

// Meals groups the entries of a day by meal slot. Every slot is a non nil
// slice, empty when nothing was logged.
type Meals struct {
	Breakfast []MealEntry `json:"breakfast"`
	Lunch     []MealEntry `json:"lunch"`
	Dinner    []MealEntry `json:"dinner"`
	Snacks    []MealEntry `json:"snacks"`
}

func newMeals() Meals {
	return Meals{
		Breakfast: make([]MealEntry, 0),
		Lunch:     make([]MealEntry, 0),
		Dinner:    make([]MealEntry, 0),
		Snacks:    make([]MealEntry, 0),
	}
}

// Of returns the entries of a meal slot.
func (m Meals) Of(meal MealType) []MealEntry {
	switch meal {
	case Breakfast:
		return m.Breakfast
	case Lunch:
		return m.Lunch
	case Dinner:
		return m.Dinner
	case Snacks:
		return m.Snacks
	default:
		return nil
	}
}

func (m *Meals) add(e MealEntry) {
	switch e.MealType {
	case Breakfast:
		m.Breakfast = append(m.Breakfast, e)
	case Lunch:
		m.Lunch = append(m.Lunch, e)
	case Dinner:
		m.Dinner = append(m.Dinner, e)
	case Snacks:
		m.Snacks = append(m.Snacks, e)
	}
}

// DailySummary is the nutrition of a day, computed from the ledger.
type DailySummary struct {
	Date   date.Date `json:"date"`
	Meals  Meals     `json:"meals"`
	Totals Nutrients `json:"totals"`
}

// Summarize computes the summary of a day from that day's entries. Entries
// keep their relative order within each meal. Totals span all meals.
func Summarize(on date.Date, entries []MealEntry) DailySummary {
	s := DailySummary{Date: on, Meals: newMeals()}
	for _, e := range entries {
		s.Meals.add(e)
		s.Totals = s.Totals.Add(e.Nutrients())
	}
	return s
}

// HasEntries reports whether anything was logged that day.
func (s DailySummary) HasEntries() bool {
	for _, m := range MealTypes {
		if len(s.Meals.Of(m)) > 0 {
			return true
		}
	}
	return false
}

// MealTotals returns the nutrition of a single meal.
func (s DailySummary) MealTotals(meal MealType) Nutrients {
	var n Nutrients
	for _, e := range s.Meals.Of(meal) {
		n = n.Add(e.Nutrients())
	}
	return n
}

// TotalOf sums the totals of several days.
func TotalOf(summaries []DailySummary) Nutrients {
	var n Nutrients
	for _, s := range summaries {
		n = n.Add(s.Totals)
	}
	return n
}

// AverageOf returns the average daily totals over the given days, empty days
// included. It is zero for no days.
func AverageOf(summaries []DailySummary) Nutrients {
	if len(summaries) == 0 {
		return Nutrients{}
	}
	return TotalOf(summaries).Div(Q(len(summaries)))
}
