package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog"
)

type addFoodCmd struct {
	name     string
	unit     string
	size     float64
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func (*addFoodCmd) Name() string     { return "add-food" }
func (*addFoodCmd) Synopsis() string { return "add a custom food to the catalog" }
func (*addFoodCmd) Usage() string {
	return `nutri add-food -name <name> [-serving <unit>] [-size <n>] -calories <kcal> [-protein <g>] [-carbs <g>] [-fat <g>]

  Adds a food to the catalog. Nutrients are given for one serving.
`
}

func (c *addFoodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the food")
	f.StringVar(&c.unit, "serving", "serving", "Serving unit, e.g. cup, slice, 100g")
	f.Float64Var(&c.size, "size", 1, "Number of units in one serving")
	f.Float64Var(&c.calories, "calories", 0, "Calories per serving")
	f.Float64Var(&c.protein, "protein", 0, "Protein per serving in grams")
	f.Float64Var(&c.carbs, "carbs", 0, "Carbohydrates per serving in grams")
	f.Float64Var(&c.fat, "fat", 0, "Fat per serving in grams")
}

// food builds the food from the flags.
func (c *addFoodCmd) food() (nutrilog.Food, error) {
	var errs error
	quantity := func(v float64) nutrilog.Quantity {
		q, err := nutrilog.FiniteQ(v)
		errs = errors.Join(errs, err)
		return q
	}
	f := nutrilog.Food{
		Name: c.name,
		Nutrients: nutrilog.Nutrients{
			Calories: quantity(c.calories),
			Protein:  quantity(c.protein),
			Carbs:    quantity(c.carbs),
			Fat:      quantity(c.fat),
		},
		ServingUnit: c.unit,
		ServingSize: quantity(c.size),
	}
	if errs != nil {
		return nutrilog.Food{}, fmt.Errorf("%w %q: %w", nutrilog.ErrInvalidFood, c.name, errs)
	}
	return f, nil
}

func (c *addFoodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	food, err := c.food()
	if err != nil {
		return fail(err)
	}
	return run(func(a *app) subcommands.ExitStatus {
		food, err := a.store.AddFood(food)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(os.Stdout, "Added %s with id %s\n", food, food.ID)
		return a.saved()
	})
}
