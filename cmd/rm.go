package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a meal entry" }
func (*rmCmd) Usage() string {
	return `nutri rm -id <entry id>

  Removes a meal entry. Removing an unknown entry does nothing.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the meal entry")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		if _, err := a.store.Entry(c.id); err != nil {
			fmt.Printf("Nothing to remove: %v\n", err)
			return subcommands.ExitSuccess
		}
		a.store.RemoveEntry(c.id)
		fmt.Printf("Removed %s\n", c.id)
		return a.saved()
	})
}
