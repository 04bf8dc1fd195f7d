// Package cmd implements the CLI application to keep a nutrition log.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/nutrilog"
	"github.com/etnz/nutrilog/config"
	"github.com/etnz/nutrilog/storage"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&foodsCmd{}, "foods")
	c.Register(&addFoodCmd{}, "foods")

	c.Register(&eatCmd{}, "meals")
	c.Register(&editCmd{}, "meals")
	c.Register(&rmCmd{}, "meals")

	c.Register(&dayCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&weekCmd{}, "reports")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&setGoalsCmd{}, "goals")

	c.Register(&queryCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to nutri.yaml if present)")
var Verbose = flag.Bool("v", false, "Log debug messages")

// EnvTestingNow freezes the clock, formatted as "2006-01-02 15:04:05".
const EnvTestingNow = "NUTRI_TESTING_NOW"

// app holds everything a command needs.
type app struct {
	config  config.Config
	logger  *zap.Logger
	storage nutrilog.Storage
	store   *nutrilog.Store
	close   func() error
}

// openApp loads the configuration and opens the store it points to.
func openApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}

	a := &app{config: cfg, logger: logger, close: func() error { return nil }}
	switch cfg.Backend {
	case config.SQLite:
		db, err := storage.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		a.storage, a.close = db, db.Close
	default:
		a.storage = storage.NewDir(cfg.DataDir)
	}
	logger.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("data_dir", cfg.DataDir))

	a.store = nutrilog.Open(a.storage, logger)
	if v := os.Getenv(EnvTestingNow); v != "" {
		now, err := time.Parse("2006-01-02 15:04:05", v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTestingNow, err)
		}
		a.store.SetClock(func() time.Time { return now })
	}
	return a, nil
}

// Close releases the storage and flushes the logs.
func (a *app) Close() error {
	err := a.close()
	_ = a.logger.Sync() // stderr cannot always be synced
	return err
}

// saved reports the outcome of the last write of the store.
func (a *app) saved() subcommands.ExitStatus {
	if err := a.store.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run opens the app, runs f and closes the app.
func run(f func(a *app) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	status := f(a)
	if err := a.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing storage: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

// fail prints err and maps it to an exit status: invalid inputs are usage errors.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case errors.Is(err, nutrilog.ErrInvalidServings),
		errors.Is(err, nutrilog.ErrInvalidMealType),
		errors.Is(err, nutrilog.ErrInvalidGoals),
		errors.Is(err, nutrilog.ErrInvalidFood):
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
