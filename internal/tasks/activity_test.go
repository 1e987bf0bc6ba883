package tasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jaedonvisva/folio/internal/shared"
	th "github.com/jaedonvisva/folio/internal/testing"
)

const todaySummaryBody = `{
	"data": [
		{
			"grand_total": {"total_seconds": 8100, "text": "2 hrs 15 mins"},
			"languages": [{"name": "Go", "text": "1 hr 30 mins", "percent": 66.7}],
			"projects": [{"name": "folio", "text": "2 hrs", "percent": 88.9}]
		}
	]
}`

const weekSummaryBody = `{
	"data": [
		{"grand_total": {"total_seconds": 3600, "text": "1 hr"}, "languages": [], "projects": []},
		{"grand_total": {"total_seconds": 1800, "text": "30 mins"}, "languages": [], "projects": []}
	]
}`

func heartbeatBody(last time.Time) string {
	return fmt.Sprintf(`{"data": [
		{"time": %d.0, "project": "older", "language": "Go"},
		{"time": %d.0, "project": "folio", "language": "Go"}
	]}`, last.Add(-time.Hour).Unix(), last.Unix())
}

// wakaDispatch routes the three parallel reads: today's summary (start ==
// end), the trailing week summary, and today's heartbeats.
func wakaDispatch(today, week, beats *http.Response) th.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		query := req.URL.Query()
		switch {
		case strings.Contains(req.URL.Path, "/heartbeats"):
			return beats, nil
		case query.Get("start") == query.Get("end"):
			return today, nil
		default:
			return week, nil
		}
	}
}

func TestActivity(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		var calls int32
		config := testConfig()
		config.Credentials.WakaTime.APIKey = ""
		agg := testAggregator(config, func(req *http.Request) (*http.Response, error) {
			atomic.AddInt32(&calls, 1)
			return th.JSONResponse(http.StatusOK, `{"data": []}`), nil
		})

		_, err := agg.Activity(context.Background())
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected missing credentials error, got %v", err)
		}
		if n := atomic.LoadInt32(&calls); n != 0 {
			t.Errorf("expected no upstream calls without an API key, got %d", n)
		}
	})

	t.Run("Full Snapshot", func(t *testing.T) {
		agg := testAggregator(testConfig(), wakaDispatch(
			th.JSONResponse(http.StatusOK, todaySummaryBody),
			th.JSONResponse(http.StatusOK, weekSummaryBody),
			th.JSONResponse(http.StatusOK, heartbeatBody(fixedNow.Add(-14*time.Minute))),
		))

		activity, err := agg.Activity(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !activity.IsCoding {
			t.Error("expected coding with a 14 minute old heartbeat")
		}
		if activity.CurrentProject != "folio" || activity.CurrentLanguage != "Go" {
			t.Errorf("expected current project/language from last heartbeat, got %q/%q", activity.CurrentProject, activity.CurrentLanguage)
		}
		if activity.TodayTotal != "2 hrs 15 mins" {
			t.Errorf("expected today total from summary text, got %q", activity.TodayTotal)
		}
		if activity.WeekTotal != "1 hrs 30 mins" {
			t.Errorf("expected summed week total, got %q", activity.WeekTotal)
		}
		if activity.WeeklyAverage != activity.WeekTotal {
			t.Errorf("weekly average must mirror the week total, got %q", activity.WeeklyAverage)
		}
		if activity.TopLanguageToday == nil || activity.TopLanguageToday.Name != "Go" {
			t.Errorf("unexpected top language: %+v", activity.TopLanguageToday)
		}
		if activity.TopProjectToday == nil || activity.TopProjectToday.Name != "folio" {
			t.Errorf("unexpected top project: %+v", activity.TopProjectToday)
		}
	})

	t.Run("Requested Date Range", func(t *testing.T) {
		var mu sync.Mutex
		var starts []string
		agg := testAggregator(testConfig(), func(req *http.Request) (*http.Response, error) {
			if strings.Contains(req.URL.Path, "/summaries") {
				mu.Lock()
				starts = append(starts, req.URL.Query().Get("start")+".."+req.URL.Query().Get("end"))
				mu.Unlock()
			}
			return th.JSONResponse(http.StatusOK, `{"data": []}`), nil
		})

		if _, err := agg.Activity(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := map[string]bool{"2025-03-09..2025-03-09": false, "2025-03-02..2025-03-09": false}
		for _, r := range starts {
			if _, ok := want[r]; !ok {
				t.Errorf("unexpected summary range %s", r)
			}
			want[r] = true
		}
		for r, seen := range want {
			if !seen {
				t.Errorf("summary range %s was never requested", r)
			}
		}
	})

	t.Run("Stale Heartbeat", func(t *testing.T) {
		agg := testAggregator(testConfig(), wakaDispatch(
			th.JSONResponse(http.StatusOK, todaySummaryBody),
			th.JSONResponse(http.StatusOK, weekSummaryBody),
			th.JSONResponse(http.StatusOK, heartbeatBody(fixedNow.Add(-16*time.Minute))),
		))

		activity, err := agg.Activity(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if activity.IsCoding {
			t.Error("expected not coding with a 16 minute old heartbeat")
		}
		if activity.CurrentProject != "" || activity.CurrentLanguage != "" {
			t.Errorf("expected no current project/language, got %q/%q", activity.CurrentProject, activity.CurrentLanguage)
		}
		if activity.TodayTotal != "2 hrs 15 mins" {
			t.Errorf("staleness must not affect the totals, got %q", activity.TodayTotal)
		}
	})

	t.Run("Summary Failure Aborts", func(t *testing.T) {
		agg := testAggregator(testConfig(), wakaDispatch(
			th.EmptyResponse(http.StatusInternalServerError),
			th.JSONResponse(http.StatusOK, weekSummaryBody),
			th.JSONResponse(http.StatusOK, `{"data": []}`),
		))

		_, err := agg.Activity(context.Background())
		if !errors.Is(err, shared.ErrUpstreamStatus) {
			t.Errorf("expected upstream status error, got %v", err)
		}
	})

	t.Run("Heartbeat Failure Degrades", func(t *testing.T) {
		agg := testAggregator(testConfig(), wakaDispatch(
			th.JSONResponse(http.StatusOK, todaySummaryBody),
			th.JSONResponse(http.StatusOK, weekSummaryBody),
			th.EmptyResponse(http.StatusBadGateway),
		))

		activity, err := agg.Activity(context.Background())
		if err != nil {
			t.Fatalf("heartbeat failure must not abort, got %v", err)
		}

		if activity.IsCoding {
			t.Error("expected not coding when heartbeats are unavailable")
		}
		if activity.TodayTotal != "2 hrs 15 mins" {
			t.Errorf("expected summary data to survive, got %q", activity.TodayTotal)
		}
	})

	t.Run("Empty Summaries", func(t *testing.T) {
		agg := testAggregator(testConfig(), wakaDispatch(
			th.JSONResponse(http.StatusOK, `{"data": []}`),
			th.JSONResponse(http.StatusOK, `{"data": []}`),
			th.JSONResponse(http.StatusOK, `{"data": []}`),
		))

		activity, err := agg.Activity(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if activity.TodayTotal != "0 mins" || activity.WeekTotal != "0 mins" || activity.WeeklyAverage != "0 mins" {
			t.Errorf("expected zero defaults, got %+v", activity)
		}
		if activity.TopLanguageToday != nil || activity.TopProjectToday != nil {
			t.Error("expected no top slices for empty summaries")
		}
	})
}
