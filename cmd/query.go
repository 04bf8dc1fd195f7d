package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/etnz/nutrilog"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the saved state" }
func (*queryCmd) Usage() string {
	return `nutri query <jsonpath>

  Evaluates the expression on the saved state and prints the result as JSON.

  Example: nutri query '$.state.mealEntries[*].food.name'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		result, err := query(a.storage, f.Arg(0))
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(os.Stdout, string(result))
		return subcommands.ExitSuccess
	})
}

// query evaluates path on the state saved in storage.
func query(s nutrilog.Storage, path string) ([]byte, error) {
	data, err := s.GetItem(nutrilog.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("no saved state: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", nutrilog.ErrMalformedState, err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return json.MarshalIndent(v, "", "  ")
}
