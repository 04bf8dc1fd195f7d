package nutrilog

import (
	"errors"
	"fmt"
	"strings"
)

// Food is a catalog entry. Nutrients are given for one serving, a serving
// being ServingSize ServingUnit (e.g. 1 cup).
type Food struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Nutrients
	ServingUnit string   `json:"serving"`
	ServingSize Quantity `json:"servingSize"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// Validate checks the food can be added to the catalog: a non empty name,
// non negative nutrients and a positive serving size.
func (f Food) Validate() error {
	var errs error
	if strings.TrimSpace(f.Name) == "" {
		errs = errors.Join(errs, errors.New("name is empty"))
	}
	for _, v := range []struct {
		name  string
		value Quantity
	}{
		{"calories", f.Calories},
		{"protein", f.Protein},
		{"carbs", f.Carbs},
		{"fat", f.Fat},
	} {
		if v.value.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("%s is negative: %v", v.name, v.value))
		}
	}
	if !f.ServingSize.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("serving size must be positive: %v", f.ServingSize))
	}
	if errs != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidFood, f.Name, errs)
	}
	return nil
}

// Serving describes one serving, e.g. "1 cup".
func (f Food) Serving() string {
	if f.ServingUnit == "" {
		return f.ServingSize.String()
	}
	return f.ServingSize.String() + " " + f.ServingUnit
}

func (f Food) String() string { return fmt.Sprintf("%s (%s)", f.Name, f.Serving()) }
