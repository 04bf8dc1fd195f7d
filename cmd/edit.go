package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog/renderer"
)

type editCmd struct {
	id       string
	servings float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the servings of a meal entry" }
func (*editCmd) Usage() string {
	return `nutri edit -id <entry id> -s <servings>
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the meal entry")
	f.Float64Var(&c.servings, "s", 1, "New number of servings")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		e, err := a.store.UpdateEntry(c.id, c.servings)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated: %s\n", renderer.Entry(e))
		return a.saved()
	})
}
