package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog"
	"github.com/etnz/nutrilog/renderer"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display the daily goals" }
func (*goalsCmd) Usage() string {
	return `nutri goals
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		printMarkdown(renderer.GoalsMarkdown(a.store.Goals()))
		return subcommands.ExitSuccess
	})
}

type setGoalsCmd struct {
	goals nutrilog.Goals
}

func (*setGoalsCmd) Name() string     { return "set-goals" }
func (*setGoalsCmd) Synopsis() string { return "change some daily goals" }
func (*setGoalsCmd) Usage() string {
	return `nutri set-goals [-calories <kcal>] [-protein <g>] [-carbs <g>] [-fat <g>]

  Changes the given goals and keeps the others. Calories must be
  positive, the other goals must not be negative. If any value is
  invalid, no goal changes.
`
}

func (c *setGoalsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.goals.Calories, "calories", 0, "Daily calories")
	f.Float64Var(&c.goals.Protein, "protein", 0, "Daily protein in grams")
	f.Float64Var(&c.goals.Carbs, "carbs", 0, "Daily carbohydrates in grams")
	f.Float64Var(&c.goals.Fat, "fat", 0, "Daily fat in grams")
}

// patch collects the flags set on the command line.
func (c *setGoalsCmd) patch(f *flag.FlagSet) nutrilog.GoalsPatch {
	var p nutrilog.GoalsPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "calories":
			p.Calories = &c.goals.Calories
		case "protein":
			p.Protein = &c.goals.Protein
		case "carbs":
			p.Carbs = &c.goals.Carbs
		case "fat":
			p.Fat = &c.goals.Fat
		}
	})
	return p
}

func (c *setGoalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := c.patch(f)
	if p.IsEmpty() {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		goals, err := a.store.PatchGoals(p)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.GoalsMarkdown(goals))
		return a.saved()
	})
}
