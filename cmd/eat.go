package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog"
	"github.com/etnz/nutrilog/renderer"
)

type eatCmd struct {
	food     string
	meal     string
	servings float64
}

func (*eatCmd) Name() string     { return "eat" }
func (*eatCmd) Synopsis() string { return "log servings of a food for a meal of today" }
func (*eatCmd) Usage() string {
	return `nutri eat -food <id> -meal <breakfast|lunch|dinner|snacks> [-s <servings>]

  Logs a meal entry for today. Use 'nutri foods' to find the food id.
`
}

func (c *eatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.food, "food", "", "Id of the food")
	f.StringVar(&c.meal, "meal", "", "Meal: breakfast, lunch, dinner or snacks")
	f.Float64Var(&c.servings, "s", 1, "Number of servings")
}

func (c *eatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	meal, err := nutrilog.ParseMealType(c.meal)
	if err != nil {
		return fail(err)
	}
	return run(func(a *app) subcommands.ExitStatus {
		e, err := a.store.AddEntry(c.food, meal, c.servings)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Logged for %s on %s: %s\n", e.MealType, e.Date, renderer.Entry(e))
		return a.saved()
	})
}
