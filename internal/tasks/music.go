package tasks

import (
	"context"
	"strings"

	"github.com/jaedonvisva/folio/internal/formatter"
	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/services"
)

// notPlaying is the safe default every failure in the chain resolves to.
var notPlaying = &models.NowPlaying{IsPlaying: false}

// NowPlaying resolves the owner's playback status through the fallback
// chain: token exchange → currently-playing → recently-played (forced to
// isPlaying=false) → playlist suppression → shaping.
//
// Never returns an error: missing credentials and upstream failures all
// collapse into the not-playing default.
func (a *Aggregator) NowPlaying(ctx context.Context) *models.NowPlaying {
	if !a.spotify.Configured() {
		return notPlaying
	}

	accessToken, err := a.spotify.AccessToken(ctx)
	if err != nil {
		a.logger.Warn("spotify token exchange failed", "error", err)
		return notPlaying
	}

	track, isPlaying, playbackCtx := a.resolveTrack(ctx, accessToken)
	if track == nil {
		return notPlaying
	}

	if a.suppressed(ctx, accessToken, playbackCtx) {
		return notPlaying
	}

	return &models.NowPlaying{
		IsPlaying: isPlaying,
		Title:     track.Name,
		Artist:    formatter.JoinNames(track.ArtistNames()),
		Album:     track.Album.Name,
		AlbumArt:  a.albumArt(track.Album.Images),
		SongURL:   track.ExternalURLs.Spotify,
	}
}

// resolveTrack tries the currently-playing endpoint first, then falls back
// to the most recent history entry with playback forced to stopped.
func (a *Aggregator) resolveTrack(ctx context.Context, accessToken string) (*services.SpotifyTrack, bool, *services.PlaybackContext) {
	playing, err := a.spotify.CurrentlyPlaying(ctx, accessToken)
	if err != nil {
		a.logger.Warn("currently-playing lookup failed", "error", err)
		return nil, false, nil
	}
	if playing != nil && playing.Item != nil {
		return playing.Item, playing.IsPlaying, playing.Context
	}

	recent, err := a.spotify.RecentlyPlayed(ctx, accessToken)
	if err != nil {
		a.logger.Warn("recently-played lookup failed", "error", err)
		return nil, false, nil
	}
	if recent == nil {
		return nil, false, nil
	}

	return &recent.Track, false, recent.Context
}

// suppressed applies the curation rule: tracks playing out of a playlist
// whose name contains both "guilty" and "pleasure" are hidden entirely.
// Resolution failures mean no suppression.
func (a *Aggregator) suppressed(ctx context.Context, accessToken string, playbackCtx *services.PlaybackContext) bool {
	if playbackCtx == nil || playbackCtx.Type != "playlist" {
		return false
	}

	// Context URIs take the form spotify:playlist:<id>
	parts := strings.Split(playbackCtx.URI, ":")
	if len(parts) < 3 || parts[2] == "" {
		return false
	}

	name, err := a.spotify.PlaylistName(ctx, accessToken, parts[2])
	if err != nil || name == "" {
		return false
	}

	lower := strings.ToLower(name)
	return strings.Contains(lower, "guilty") && strings.Contains(lower, "pleasure")
}

// albumArt picks the preferred image-size variant, falling back to the
// first available image. The preferred index is configuration, not a
// constant: upstream image arrays are not guaranteed a fixed size.
func (a *Aggregator) albumArt(images []services.SpotifyImage) string {
	if idx := a.widgets.AlbumArtIndex; idx >= 0 && idx < len(images) {
		return images[idx].URL
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}
