// WakaTime REST client for coding-activity summaries and heartbeats.
//
// Endpoint shapes follow https://wakatime.com/developers
package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jaedonvisva/folio/internal/shared"
)

const wakatimeBaseURL = "https://wakatime.com/api/v1"

// SummaryStat is a named share of coding time within one daily summary
// (per-language or per-project breakdown).
type SummaryStat struct {
	Name    string  `json:"name"`
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
}

// SummaryEntry is one day of aggregated coding time.
type SummaryEntry struct {
	GrandTotal struct {
		TotalSeconds float64 `json:"total_seconds"`
		Text         string  `json:"text"`
	} `json:"grand_total"`
	Languages []SummaryStat `json:"languages"`
	Projects  []SummaryStat `json:"projects"`
}

// Heartbeat is a single editor activity event. Time is a UNIX timestamp
// with fractional seconds.
type Heartbeat struct {
	Time     float64 `json:"time"`
	Project  string  `json:"project"`
	Language string  `json:"language"`
}

// WakaTimeService reads the current user's summaries and heartbeats with
// an API key.
type WakaTimeService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWakaTimeService creates a WakaTime client.
func NewWakaTimeService(apiKey string, client *http.Client) *WakaTimeService {
	if client == nil {
		client = defaultClient
	}

	return &WakaTimeService{
		apiKey:     apiKey,
		baseURL:    wakatimeBaseURL,
		httpClient: client,
	}
}

// Configured reports whether an API key is present.
func (s *WakaTimeService) Configured() bool {
	return s.apiKey != ""
}

// get performs an authenticated GET. WakaTime expects the raw API key
// base64-encoded as a Basic credential.
func (s *WakaTimeService) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(s.apiKey))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return resp, nil
}

// Summaries fetches daily summaries for the inclusive date range
// [start, end], both UTC calendar dates (YYYY-MM-DD).
func (s *WakaTimeService) Summaries(ctx context.Context, start, end string) ([]SummaryEntry, error) {
	endpoint := fmt.Sprintf("/users/current/summaries?start=%s&end=%s", url.QueryEscape(start), url.QueryEscape(end))

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !okStatus(resp) {
		return nil, fmt.Errorf("%w: wakatime summaries responded %d", shared.ErrUpstreamStatus, resp.StatusCode)
	}

	var response struct {
		Data []SummaryEntry `json:"data"`
	}
	if err := decodeJSON(resp, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// Heartbeats fetches all heartbeat events for the given UTC date, oldest
// first (upstream ordering).
func (s *WakaTimeService) Heartbeats(ctx context.Context, date string) ([]Heartbeat, error) {
	endpoint := fmt.Sprintf("/users/current/heartbeats?date=%s", url.QueryEscape(date))

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !okStatus(resp) {
		return nil, fmt.Errorf("%w: wakatime heartbeats responded %d", shared.ErrUpstreamStatus, resp.StatusCode)
	}

	var response struct {
		Data []Heartbeat `json:"data"`
	}
	if err := decodeJSON(resp, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
