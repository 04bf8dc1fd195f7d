package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/nutrilog"
	"github.com/etnz/nutrilog/docs"
)

// Completion describes the registered subcommands and their flags for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	meals := make(predict.Set, 0, len(nutrilog.MealTypes))
	for _, m := range nutrilog.MealTypes {
		meals = append(meals, m.String())
	}
	topics, _ := docs.GetAllTopics()

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				sub.Flags[f.Name] = predict.Nothing
				return
			}
			switch f.Name {
			case "meal":
				sub.Flags[f.Name] = meals
			case "p":
				sub.Flags[f.Name] = predict.Set{"day", "week", "month"}
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(topics)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
