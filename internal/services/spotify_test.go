package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jaedonvisva/folio/internal/shared"
	th "github.com/jaedonvisva/folio/internal/testing"
)

var testSpotifyCreds = shared.SpotifyCredentials{
	ClientID:     "test_client_id",
	ClientSecret: "test_client_secret",
	RefreshToken: "test_refresh_token",
}

const currentlyPlayingResponse = `{
	"is_playing": true,
	"item": {
		"name": "Get Lucky",
		"artists": [{"name": "Daft Punk"}, {"name": "Pharrell Williams"}],
		"album": {
			"name": "Random Access Memories",
			"images": [
				{"url": "https://img/640", "height": 640, "width": 640},
				{"url": "https://img/300", "height": 300, "width": 300},
				{"url": "https://img/64", "height": 64, "width": 64}
			]
		},
		"external_urls": {"spotify": "https://open.spotify.com/track/abc"}
	},
	"context": {"type": "playlist", "uri": "spotify:playlist:37i9dQ"}
}`

func TestSpotifyService(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		if !NewSpotifyService(testSpotifyCreds, nil).Configured() {
			t.Error("expected configured with full credentials")
		}

		partial := testSpotifyCreds
		partial.RefreshToken = ""
		if NewSpotifyService(partial, nil).Configured() {
			t.Error("expected unconfigured without refresh token")
		}

		if NewSpotifyService(shared.SpotifyCredentials{}, nil).Configured() {
			t.Error("expected unconfigured with empty credentials")
		}
	})

	t.Run("AccessToken", func(t *testing.T) {
		t.Run("Missing Credentials", func(t *testing.T) {
			srv := NewSpotifyService(shared.SpotifyCredentials{}, nil)
			_, err := srv.AccessToken(context.Background())
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected missing credentials error, got %v", err)
			}
		})

		t.Run("Exchange", func(t *testing.T) {
			var captured *http.Request
			client := th.ClientWith(th.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				captured = req
				body := `{"access_token": "short_lived", "token_type": "Bearer", "expires_in": 3600}`
				return th.JSONResponse(http.StatusOK, body), nil
			}))

			srv := NewSpotifyService(testSpotifyCreds, client)
			token, err := srv.AccessToken(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != "short_lived" {
				t.Errorf("expected token short_lived, got %s", token)
			}

			if !strings.HasPrefix(captured.Header.Get("Authorization"), "Basic ") {
				t.Errorf("expected basic auth on token exchange, got %q", captured.Header.Get("Authorization"))
			}
		})

		t.Run("Exchange Failure", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.JSONResponse(http.StatusBadRequest, `{"error": "invalid_grant"}`), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			_, err := srv.AccessToken(context.Background())
			if !errors.Is(err, shared.ErrTokenExchange) {
				t.Errorf("expected token exchange error, got %v", err)
			}
		})
	})

	t.Run("CurrentlyPlaying", func(t *testing.T) {
		t.Run("Playing", func(t *testing.T) {
			var captured *http.Request
			client := th.ClientWith(th.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				captured = req
				return th.JSONResponse(http.StatusOK, currentlyPlayingResponse), nil
			}))

			srv := NewSpotifyService(testSpotifyCreds, client)
			playing, err := srv.CurrentlyPlaying(context.Background(), "short_lived")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := captured.Header.Get("Authorization"); got != "Bearer short_lived" {
				t.Errorf("expected bearer auth, got %q", got)
			}

			if playing == nil || playing.Item == nil {
				t.Fatal("expected a playing track")
			}
			if !playing.IsPlaying {
				t.Error("expected is_playing true")
			}
			if playing.Item.Name != "Get Lucky" {
				t.Errorf("expected track Get Lucky, got %s", playing.Item.Name)
			}
			if names := playing.Item.ArtistNames(); len(names) != 2 || names[0] != "Daft Punk" {
				t.Errorf("unexpected artists: %v", names)
			}
			if playing.Context == nil || playing.Context.Type != "playlist" {
				t.Errorf("unexpected playback context: %+v", playing.Context)
			}
		})

		t.Run("No Content", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.EmptyResponse(http.StatusNoContent), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			playing, err := srv.CurrentlyPlaying(context.Background(), "tok")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if playing != nil {
				t.Errorf("expected nil for 204, got %+v", playing)
			}
		})

		t.Run("Upstream Error Status", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.JSONResponse(http.StatusTooManyRequests, `{"error": "rate limited"}`), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			playing, err := srv.CurrentlyPlaying(context.Background(), "tok")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if playing != nil {
				t.Errorf("expected nil for error status, got %+v", playing)
			}
		})
	})

	t.Run("RecentlyPlayed", func(t *testing.T) {
		t.Run("With History", func(t *testing.T) {
			body := `{"items": [{"track": {"name": "Instant Crush", "artists": [{"name": "Daft Punk"}], "album": {"name": "RAM", "images": []}, "external_urls": {"spotify": "https://open.spotify.com/track/xyz"}}, "context": null}]}`
			var captured *http.Request
			client := th.ClientWith(th.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				captured = req
				return th.JSONResponse(http.StatusOK, body), nil
			}))

			srv := NewSpotifyService(testSpotifyCreds, client)
			recent, err := srv.RecentlyPlayed(context.Background(), "tok")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := captured.URL.Query().Get("limit"); got != "1" {
				t.Errorf("expected limit=1, got %q", got)
			}

			if recent == nil {
				t.Fatal("expected a history entry")
			}
			if recent.Track.Name != "Instant Crush" {
				t.Errorf("expected track Instant Crush, got %s", recent.Track.Name)
			}
		})

		t.Run("Empty History", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.JSONResponse(http.StatusOK, `{"items": []}`), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			recent, err := srv.RecentlyPlayed(context.Background(), "tok")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if recent != nil {
				t.Errorf("expected nil for empty history, got %+v", recent)
			}
		})

		t.Run("Upstream Error Status", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.EmptyResponse(http.StatusForbidden), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			recent, err := srv.RecentlyPlayed(context.Background(), "tok")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if recent != nil {
				t.Errorf("expected nil for error status, got %+v", recent)
			}
		})
	})

	t.Run("PlaylistName", func(t *testing.T) {
		t.Run("Resolves", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.JSONResponse(http.StatusOK, `{"name": "Guilty Pleasures 2024"}`), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			name, err := srv.PlaylistName(context.Background(), "tok", "37i9dQ")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if name != "Guilty Pleasures 2024" {
				t.Errorf("expected playlist name, got %q", name)
			}
		})

		t.Run("Lookup Failure", func(t *testing.T) {
			client := th.ClientWith(th.NewMockRoundTripper(th.EmptyResponse(http.StatusNotFound), nil))

			srv := NewSpotifyService(testSpotifyCreds, client)
			name, err := srv.PlaylistName(context.Background(), "tok", "gone")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if name != "" {
				t.Errorf("expected empty name for failed lookup, got %q", name)
			}
		})
	})
}
