// Spotify Web API client for playback status.
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jaedonvisva/folio/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album. Images are ordered largest-first.
type SpotifyAlbum struct {
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	Album        SpotifyAlbum    `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// ArtistNames returns the track's artist names in upstream order.
func (t SpotifyTrack) ArtistNames() []string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return names
}

// PlaybackContext annotates where playback originated (playlist, album, ...).
type PlaybackContext struct {
	Type string `json:"type"`
	URI  string `json:"uri"` // e.g. spotify:playlist:<id>
}

// CurrentlyPlaying represents the currently-playing endpoint response.
// Item is nil when nothing is playing.
type CurrentlyPlaying struct {
	IsPlaying bool             `json:"is_playing"`
	Item      *SpotifyTrack    `json:"item"`
	Context   *PlaybackContext `json:"context"`
}

// RecentlyPlayedItem is one history entry from the recently-played endpoint.
type RecentlyPlayedItem struct {
	Track   SpotifyTrack     `json:"track"`
	Context *PlaybackContext `json:"context"`
}

// SpotifyService exchanges the stored refresh token for short-lived access
// tokens and reads playback state. The service is stateless: each request
// performs a fresh exchange, nothing is cached between requests.
type SpotifyService struct {
	creds      shared.SpotifyCredentials
	tokenURL   string
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyService creates a Spotify client from the configured credentials.
func NewSpotifyService(creds shared.SpotifyCredentials, client *http.Client) *SpotifyService {
	if client == nil {
		client = defaultClient
	}

	return &SpotifyService{
		creds:      creds,
		tokenURL:   spotifyTokenURL,
		baseURL:    spotifyBaseURL,
		httpClient: client,
	}
}

// Configured reports whether all three required secrets are present.
func (s *SpotifyService) Configured() bool {
	return s.creds.ClientID != "" && s.creds.ClientSecret != "" && s.creds.RefreshToken != ""
}

// AccessToken exchanges the refresh token for a short-lived access token
// via [oauth2]. The client id and secret are combined into the basic
// credential by the oauth2 transport.
func (s *SpotifyService) AccessToken(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", shared.ErrMissingCredentials
	}

	config := &oauth2.Config{
		ClientID:     s.creds.ClientID,
		ClientSecret: s.creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  s.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := config.TokenSource(ctx, &oauth2.Token{RefreshToken: s.creds.RefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTokenExchange, err)
	}

	return token.AccessToken, nil
}

// get performs an authenticated GET against the Spotify API.
func (s *SpotifyService) get(ctx context.Context, accessToken, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return resp, nil
}

// CurrentlyPlaying reads the player's current track. A 204 or any status
// >= 400 means nothing is playing and yields (nil, nil), not an error.
func (s *SpotifyService) CurrentlyPlaying(ctx context.Context, accessToken string) (*CurrentlyPlaying, error) {
	resp, err := s.get(ctx, accessToken, "/me/player/currently-playing")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode >= 400 {
		return nil, nil
	}

	var playing CurrentlyPlaying
	if err := decodeJSON(resp, &playing); err != nil {
		return nil, err
	}

	return &playing, nil
}

// RecentlyPlayed returns the most recent history entry, or nil when the
// endpoint fails or history is empty.
func (s *SpotifyService) RecentlyPlayed(ctx context.Context, accessToken string) (*RecentlyPlayedItem, error) {
	resp, err := s.get(ctx, accessToken, "/me/player/recently-played?limit=1")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !okStatus(resp) {
		return nil, nil
	}

	var response struct {
		Items []RecentlyPlayedItem `json:"items"`
	}
	if err := decodeJSON(resp, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		return nil, nil
	}

	return &response.Items[0], nil
}

// PlaylistName resolves a playlist's display name. Lookup failures yield
// ("", nil): the caller treats an unresolvable name as no suppression.
func (s *SpotifyService) PlaylistName(ctx context.Context, accessToken, playlistID string) (string, error) {
	resp, err := s.get(ctx, accessToken, "/playlists/"+playlistID)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !okStatus(resp) {
		return "", nil
	}

	var playlist struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(resp, &playlist); err != nil {
		return "", err
	}

	return playlist.Name, nil
}
