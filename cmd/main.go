package main

import (
	"context"
	"os"

	"github.com/jaedonvisva/folio/internal/shared"
	"github.com/jaedonvisva/folio/internal/tasks"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	// Secrets come from the environment only; .env is a convenience for
	// local development and silently skipped when absent.
	_ = godotenv.Load()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "error", err)
		}
	}
	config.LoadCredentials()

	agg := tasks.NewAggregator(tasks.AggregatorOpts{
		Config: config,
		Logger: logger,
	})

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Aggregator: agg,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "folio",
		Usage:    "Personal portfolio site with live status widgets",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
