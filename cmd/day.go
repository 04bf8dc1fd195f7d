package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog/date"
	"github.com/etnz/nutrilog/renderer"
)

// dayCmd holds the flags for the 'day' subcommand.
type dayCmd struct {
	date string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display the meals of a day and the progress towards the goals" }
func (*dayCmd) Usage() string {
	return `nutri day [-d <date>]

  Displays the entries of a day grouped by meal, the totals and the
  progress towards the daily goals. The date is either absolute
  (2025-07-01) or relative to today (-1d, -2w).
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Day to display (defaults to today)")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		on, err := date.ParseRelative(c.date, a.store.Today())
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.DailyMarkdown(a.store.DailySummary(on), a.store.Goals()))
		return subcommands.ExitSuccess
	})
}
