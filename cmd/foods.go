package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/nutrilog/renderer"
)

type foodsCmd struct {
	query  string
	custom bool
}

func (*foodsCmd) Name() string     { return "foods" }
func (*foodsCmd) Synopsis() string { return "search the food catalog" }
func (*foodsCmd) Usage() string {
	return `nutri foods [-q <query>] [-custom]

  Lists the foods whose name contains the query, ignoring case.
  Without a query, lists the whole catalog.
`
}

func (c *foodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search query")
	f.BoolVar(&c.custom, "custom", false, "List only the foods you added")
}

func (c *foodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		foods := a.store.SearchFoods(c.query)
		if c.custom {
			foods = a.store.CustomFoods()
		}
		printMarkdown(renderer.FoodsMarkdown(c.query, foods))
		return subcommands.ExitSuccess
	})
}
