package nutrilog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGoals_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		goals     Goals
		wantField []string // fields reported in the error
	}{
		{"defaults", DefaultGoals(), nil},
		{"zero macros", Goals{Calories: 1}, nil},
		{"zero calories", Goals{0, 150, 200, 65}, []string{"calorieGoal"}},
		{"negative calories", Goals{-1, 150, 200, 65}, []string{"calorieGoal"}},
		{"negative protein", Goals{2000, -1, 200, 65}, []string{"proteinGoal"}},
		{"NaN carbs", Goals{2000, 150, math.NaN(), 65}, []string{"carbsGoal"}},
		{"infinite fat", Goals{2000, 150, 200, math.Inf(1)}, []string{"fatGoal"}},
		{"several", Goals{math.NaN(), -5, 200, -1}, []string{"calorieGoal", "proteinGoal", "fatGoal"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.goals.Validate()
			if len(tc.wantField) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidGoals) {
				t.Fatalf("Validate() error = %v, want ErrInvalidGoals", err)
			}
			for _, field := range tc.wantField {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("Validate() error = %q, want it to mention %s", err, field)
				}
			}
		})
	}
}

func TestGoalsPatch_Apply(t *testing.T) {
	calories, fat := 1500.0, 50.0
	p := GoalsPatch{Calories: &calories, Fat: &fat}
	if p.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got, want := p.Apply(DefaultGoals()), (Goals{1500, 150, 200, 50}); got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
	if !(GoalsPatch{}).IsEmpty() {
		t.Error("empty patch IsEmpty() = false")
	}
}
