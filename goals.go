package nutrilog

import (
	"errors"
	"fmt"
	"math"
)

// Goals are the user's daily nutrition targets.
type Goals struct {
	Calories float64 `json:"calorieGoal"`
	Protein  float64 `json:"proteinGoal"`
	Carbs    float64 `json:"carbsGoal"`
	Fat      float64 `json:"fatGoal"`
}

// DefaultGoals returns the goals of a new user.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}
}

// Validate checks every field: all must be finite, calories must be positive
// and the macros must not be negative. The returned error lists every
// failing field and wraps ErrInvalidGoals.
func (g Goals) Validate() error {
	var errs error
	check := func(name string, v float64, positive bool) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = errors.Join(errs, fmt.Errorf("%s is not a finite number: %v", name, v))
		case positive && v <= 0:
			errs = errors.Join(errs, fmt.Errorf("%s must be greater than 0: %v", name, v))
		case v < 0:
			errs = errors.Join(errs, fmt.Errorf("%s must not be negative: %v", name, v))
		}
	}
	check("calorieGoal", g.Calories, true)
	check("proteinGoal", g.Protein, false)
	check("carbsGoal", g.Carbs, false)
	check("fatGoal", g.Fat, false)
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGoals, errs)
	}
	return nil
}

// GoalsPatch is a partial update of Goals, nil fields keep their current value.
type GoalsPatch struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// Apply returns g with the patched fields replaced. The result is not validated.
func (p GoalsPatch) Apply(g Goals) Goals {
	if p.Calories != nil {
		g.Calories = *p.Calories
	}
	if p.Protein != nil {
		g.Protein = *p.Protein
	}
	if p.Carbs != nil {
		g.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		g.Fat = *p.Fat
	}
	return g
}

// IsEmpty reports whether the patch changes nothing.
func (p GoalsPatch) IsEmpty() bool {
	return p.Calories == nil && p.Protein == nil && p.Carbs == nil && p.Fat == nil
}
