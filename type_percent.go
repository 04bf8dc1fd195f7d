package nutrilog

import (
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}

// Progress returns how much of goal total represents, capped at 100%.
// Goals below 1 count as 1 so that a zero goal does not divide by zero.
func Progress(total Quantity, goal float64) Percent {
	goal = math.Max(goal, 1)
	return Percent(math.Min(100, 100*total.Float64()/goal))
}

// GoalProgress is the progress of each nutrient towards its goal.
type GoalProgress struct {
	Calories, Protein, Carbs, Fat Percent
}

// ProgressOf computes the progress of totals towards goals.
func ProgressOf(totals Nutrients, goals Goals) GoalProgress {
	return GoalProgress{
		Calories: Progress(totals.Calories, goals.Calories),
		Protein:  Progress(totals.Protein, goals.Protein),
		Carbs:    Progress(totals.Carbs, goals.Carbs),
		Fat:      Progress(totals.Fat, goals.Fat),
	}
}
