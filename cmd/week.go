package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog/date"
	"github.com/etnz/nutrilog/renderer"
)

// weekCmd holds the flags for the 'week' subcommand.
type weekCmd struct {
	date   string
	period string
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "display the totals and averages of several days" }
func (*weekCmd) Usage() string {
	return `nutri week [-d <date>] [-p <day|week|month>]

  Without -p, displays the last 7 days up to the date.
  With -p, displays the calendar period containing the date, weeks
  starting on Monday.
`
}

func (c *weekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Last day of the report (defaults to today)")
	f.StringVar(&c.period, "p", "", "Calendar period: day, week or month")
}

func (c *weekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		on, err := date.ParseRelative(c.date, a.store.Today())
		if err != nil {
			return fail(err)
		}
		r := date.LastDays(on, 6)
		if c.period != "" {
			p, err := date.ParsePeriod(c.period)
			if err != nil {
				return fail(err)
			}
			r = date.NewRange(on, p)
		}
		summaries := a.store.RangeSummaries(r.Days())
		printMarkdown(renderer.PeriodMarkdown(r, summaries, a.store.Goals()))
		return subcommands.ExitSuccess
	})
}
