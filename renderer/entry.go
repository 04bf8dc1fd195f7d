package renderer

import (
	"fmt"

	"github.com/etnz/nutrilog"
)

// round formats a quantity the way it is displayed: without decimals.
func round(q nutrilog.Quantity) string { return q.Round(0).String() }

// Entry renders a meal entry to a single line.
func Entry(e nutrilog.MealEntry) string {
	return fmt.Sprintf("%s x %s (%s) %s kcal `%s`", e.Servings, e.Food.Name, e.Food.Serving(), round(e.Nutrients().Calories), e.ID)
}

// Food renders a catalog food to a single line.
func Food(f nutrilog.Food) string {
	custom := ""
	if f.IsCustom {
		custom = " (custom)"
	}
	return fmt.Sprintf("%s%s: %s kcal per %s `%s`", f.Name, custom, round(f.Calories), f.Serving(), f.ID)
}
