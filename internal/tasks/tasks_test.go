package tasks

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jaedonvisva/folio/internal/shared"
	th "github.com/jaedonvisva/folio/internal/testing"
)

// fixedNow pins the aggregation clock so heartbeat-freshness and date-range
// assertions are deterministic.
var fixedNow = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func testConfig() *shared.Config {
	config := shared.DefaultConfig()
	config.Credentials = shared.CredentialsConfig{
		GitHub:   shared.GitHubCredentials{Token: "gh_token"},
		Spotify:  shared.SpotifyCredentials{ClientID: "sp_id", ClientSecret: "sp_secret", RefreshToken: "sp_refresh"},
		WakaTime: shared.WakaTimeCredentials{APIKey: "waka_key"},
	}
	return config
}

func testAggregator(config *shared.Config, rt th.RoundTripFunc) *Aggregator {
	return NewAggregator(AggregatorOpts{
		Config:     config,
		HTTPClient: th.ClientWith(rt),
		Logger:     shared.NewLogger(io.Discard),
		Now:        func() time.Time { return fixedNow },
	})
}

// tokenResponse satisfies the refresh-token exchange every Spotify flow
// starts with.
func tokenResponse() *http.Response {
	return th.JSONResponse(http.StatusOK, `{"access_token": "tok", "token_type": "Bearer", "expires_in": 3600}`)
}

func TestNewAggregator(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		agg := NewAggregator(AggregatorOpts{})

		if agg.github == nil || agg.spotify == nil || agg.waka == nil {
			t.Fatal("expected all upstream clients to be constructed")
		}
		if agg.logger == nil {
			t.Error("expected a default logger")
		}
		if agg.now == nil {
			t.Error("expected a default clock")
		}
	})

	t.Run("Widgets From Config", func(t *testing.T) {
		config := testConfig()
		config.Widgets.AlbumArtIndex = 1

		agg := NewAggregator(AggregatorOpts{Config: config})
		if agg.widgets.AlbumArtIndex != 1 {
			t.Errorf("expected album art index 1, got %d", agg.widgets.AlbumArtIndex)
		}
	})
}
