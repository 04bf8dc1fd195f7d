package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog/renderer"
)

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the totals of the recent days" }
func (*historyCmd) Usage() string {
	return `nutri history [-n <days>]

  Displays the totals of every day with entries among today and the n
  previous days, newest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 30, "Number of days to look back")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must not be negative")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		printMarkdown(renderer.HistoryMarkdown(a.store.History(c.days)))
		return subcommands.ExitSuccess
	})
}
