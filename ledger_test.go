package nutrilog

import (
	"slices"
	"testing"

	"github.com/etnz/nutrilog/date"
)

func TestLedger_Append(t *testing.T) {
	l := NewLedger()
	if err := l.Append(entry("a", Lunch, N(1, 1, 1, 1), 1), entry("b", Lunch, N(1, 1, 1, 1), 1)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	testCases := []struct {
		name    string
		entries []MealEntry
	}{
		{"existing id", []MealEntry{entry("c", Lunch, Nutrients{}, 1), entry("a", Lunch, Nutrients{}, 1)}},
		{"duplicate in batch", []MealEntry{entry("d", Lunch, Nutrients{}, 1), entry("d", Lunch, Nutrients{}, 1)}},
		{"empty id", []MealEntry{entry("", Lunch, Nutrients{}, 1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := l.Append(tc.entries...); err == nil {
				t.Error("Append() succeeded, want error")
			}
			if l.Len() != 2 {
				t.Errorf("Len() = %d after failed Append(), want 2", l.Len())
			}
		})
	}
}

func TestLedger_Days(t *testing.T) {
	l := NewLedger()
	for i, day := range []string{"2025-04-03", "2025-04-01", "2025-04-03", "2025-03-30"} {
		e := entry(string(rune('a'+i)), Lunch, Nutrients{}, 1)
		e.Date = date.MustParse(day)
		l.Append(e)
	}
	var got []string
	for _, d := range l.Days() {
		got = append(got, d.String())
	}
	if want := []string{"2025-03-30", "2025-04-01", "2025-04-03"}; !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}
