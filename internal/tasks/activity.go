package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/jaedonvisva/folio/internal/formatter"
	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/services"
	"github.com/jaedonvisva/folio/internal/shared"
	"golang.org/x/sync/errgroup"
)

// Activity builds the coding-activity snapshot from three upstream reads
// issued in parallel: today's summary, the trailing 7-day summary, and
// today's heartbeats.
//
// Either summary failing aborts the snapshot (the handler serves the zero
// payload with a 500); the heartbeat lookup failing only degrades the
// result to "not coding".
//
// Returns [shared.ErrMissingCredentials] before any upstream call when no
// WakaTime API key is configured.
func (a *Aggregator) Activity(ctx context.Context) (*models.CodingActivity, error) {
	if !a.waka.Configured() {
		return nil, fmt.Errorf("%w: wakatime api key", shared.ErrMissingCredentials)
	}

	now := a.now().UTC()
	today := formatter.Day(now)
	weekStart := formatter.Day(now.AddDate(0, 0, -7))

	var (
		todaySummaries []services.SummaryEntry
		weekSummaries  []services.SummaryEntry
		heartbeats     []services.Heartbeat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todaySummaries, err = a.waka.Summaries(gctx, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		weekSummaries, err = a.waka.Summaries(gctx, weekStart, today)
		return err
	})
	g.Go(func() error {
		hb, err := a.waka.Heartbeats(gctx, today)
		if err != nil {
			a.logger.Warn("heartbeat lookup failed", "error", err)
			return nil
		}
		heartbeats = hb
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	activity := models.ZeroActivity()

	var weekSeconds float64
	for _, day := range weekSummaries {
		weekSeconds += day.GrandTotal.TotalSeconds
	}
	if len(weekSummaries) > 0 {
		activity.WeekTotal = formatter.FormatSeconds(weekSeconds)
	}
	activity.WeeklyAverage = activity.WeekTotal

	if len(todaySummaries) > 0 {
		today := todaySummaries[0]
		if today.GrandTotal.Text != "" {
			activity.TodayTotal = today.GrandTotal.Text
		}
		if len(today.Languages) > 0 {
			activity.TopLanguageToday = statSlice(today.Languages[0])
		}
		if len(today.Projects) > 0 {
			activity.TopProjectToday = statSlice(today.Projects[0])
		}
	}

	// The current project/language fields are gated strictly by heartbeat
	// freshness, not by heartbeat existence.
	if len(heartbeats) > 0 {
		last := heartbeats[len(heartbeats)-1]
		beat := time.Unix(int64(last.Time), 0)
		if now.Sub(beat) < activityWindow {
			activity.IsCoding = true
			activity.CurrentProject = last.Project
			activity.CurrentLanguage = last.Language
		}
	}

	return activity, nil
}

func statSlice(stat services.SummaryStat) *models.StatSlice {
	return &models.StatSlice{
		Name:    stat.Name,
		Time:    stat.Text,
		Percent: stat.Percent,
	}
}
