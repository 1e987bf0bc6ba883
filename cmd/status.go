package main

import (
	"context"
	"fmt"

	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/shared"
	"github.com/urfave/cli/v3"
)

// StatusPins fetches the pinned repositories for the configured (or given) user.
func (r *Runner) StatusPins(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	if username == "" {
		username = r.config.Profile.GitHubUsername
	}
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching pinned repositories", "username", username)

	repos, err := r.agg.PinnedRepos(ctx, username)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeJSON(repos, pretty)
}

// StatusMusic fetches the current Spotify playback state.
func (r *Runner) StatusMusic(ctx context.Context, cmd *cli.Command) error {
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching playback state")

	return r.writeJSON(r.agg.NowPlaying(ctx), pretty)
}

// StatusCode fetches the aggregated WakaTime coding activity.
func (r *Runner) StatusCode(ctx context.Context, cmd *cli.Command) error {
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching coding activity")

	activity, err := r.agg.Activity(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeJSON(activity, pretty)
}

// StatusAll fetches every widget payload and prints a combined document.
func (r *Runner) StatusAll(ctx context.Context, cmd *cli.Command) error {
	pretty := cmd.Bool("pretty")
	username := cmd.String("username")
	if username == "" {
		username = r.config.Profile.GitHubUsername
	}

	type StatusData struct {
		Pins     any   `json:"pins,omitempty"`
		Music    any   `json:"music"`
		Activity any   `json:"activity"`
		Errors   []any `json:"errors,omitempty"`
	}

	status := StatusData{}

	r.writePlain("Fetching widget state...\n\n")

	if repos, err := r.agg.PinnedRepos(ctx, username); err == nil {
		status.Pins = repos
	} else {
		status.Errors = append(status.Errors, map[string]string{"widget": "pins", "error": err.Error()})
		r.logger.Warn("failed to fetch pinned repositories", "error", err)
	}

	status.Music = r.agg.NowPlaying(ctx)

	if activity, err := r.agg.Activity(ctx); err == nil {
		status.Activity = activity
	} else {
		status.Errors = append(status.Errors, map[string]string{"widget": "activity", "error": err.Error()})
		status.Activity = models.ZeroActivity()
		r.logger.Warn("failed to fetch coding activity", "error", err)
	}

	return r.writeJSON(status, pretty)
}

// statusCommand handles one-shot widget fetches
func statusCommand(r *Runner) *cli.Command {
	prettyFlag := &cli.BoolFlag{
		Name:  "pretty",
		Usage: "Pretty-print output",
		Value: true,
	}
	usernameFlag := &cli.StringFlag{
		Name:    "username",
		Aliases: []string{"u"},
		Usage:   "GitHub username (defaults to the configured profile)",
	}

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Fetch widget payloads once and print them",
		Commands: []*cli.Command{
			{
				Name:   "pins",
				Usage:  "Show pinned GitHub repositories",
				Flags:  []cli.Flag{usernameFlag, prettyFlag},
				Action: r.StatusPins,
			},
			{
				Name:   "music",
				Usage:  "Show current Spotify playback",
				Flags:  []cli.Flag{prettyFlag},
				Action: r.StatusMusic,
			},
			{
				Name:   "code",
				Usage:  "Show WakaTime coding activity",
				Flags:  []cli.Flag{prettyFlag},
				Action: r.StatusCode,
			},
			{
				Name:   "all",
				Usage:  "Show every widget payload in one document",
				Flags:  []cli.Flag{usernameFlag, prettyFlag},
				Action: r.StatusAll,
			},
		},
	}
}
