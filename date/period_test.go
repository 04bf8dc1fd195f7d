package date

import (
	"testing"
	"time"
)

func TestNewWeeklyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A Wednesday",
			in:   New(2025, time.September, 10),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "A Monday",
			in:   New(2025, time.September, 8),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "A Sunday",
			in:   New(2025, time.September, 14),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, Weekly); got != tc.want {
				t.Errorf("NewRange(Weekly) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewMonthlyRange(t *testing.T) {
	got := NewRange(New(2024, time.February, 10), Monthly)
	want := Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}
	if got != want {
		t.Errorf("NewRange(Monthly) = %v, want %v", got, want)
	}
	if got.Len() != 29 {
		t.Errorf("Len() = %d, want 29", got.Len())
	}
}

func TestRange(t *testing.T) {
	r := LastDays(MustParse("2025-01-03"), 3)
	if r.From.String() != "2024-12-31" {
		t.Errorf("LastDays().From = %v, want 2024-12-31", r.From)
	}
	if !r.Contains(MustParse("2025-01-01")) {
		t.Error("Contains(2025-01-01) = false, want true")
	}
	if r.Contains(MustParse("2025-01-04")) {
		t.Error("Contains(2025-01-04) = true, want false")
	}
	if got, want := r.String(), "2024-12-31..2025-01-03"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "Week": Weekly, "monthly": Monthly} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) succeeded, want error")
	}
}
