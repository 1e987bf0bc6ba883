package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/shared"
	"github.com/jaedonvisva/folio/internal/tasks"
)

// PinsHandler serves the pinned-repository listing.
type PinsHandler struct {
	agg    *tasks.Aggregator
	logger *log.Logger
}

// NewPinsHandler creates the handler backed by the aggregation engine.
func NewPinsHandler(agg *tasks.Aggregator, logger *log.Logger) *PinsHandler {
	return &PinsHandler{agg: agg, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *PinsHandler) Routes() []string {
	return []string{"/api/github-pinned"}
}

// ServeHTTP validates the username parameter and serves the merged pin
// listing. Missing username is the caller's fault (400); a missing token or
// a failed pinned-list fetch is ours (500).
func (h *PinsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}

	repos, err := h.agg.PinnedRepos(r.Context(), username)
	if err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) {
			writeError(w, http.StatusInternalServerError, "GitHub token not configured")
			return
		}
		h.logger.Error("pinned repositories fetch failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch pinned repositories")
		return
	}

	writeJSON(w, http.StatusOK, repos)
}

// MusicHandler serves the now-playing widget payload.
type MusicHandler struct {
	agg *tasks.Aggregator
}

// NewMusicHandler creates the handler backed by the aggregation engine.
func NewMusicHandler(agg *tasks.Aggregator) *MusicHandler {
	return &MusicHandler{agg: agg}
}

// Routes returns both the canonical path and its legacy alias.
func (h *MusicHandler) Routes() []string {
	return []string{"/api/spotify/now-playing", "/api/spotify"}
}

// ServeHTTP always responds 200 with a complete payload; every upstream
// failure has already collapsed into the not-playing default.
func (h *MusicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.NowPlaying(r.Context()))
}

// ActivityHandler serves the coding-activity widget payload.
type ActivityHandler struct {
	agg    *tasks.Aggregator
	logger *log.Logger
}

// NewActivityHandler creates the handler backed by the aggregation engine.
func NewActivityHandler(agg *tasks.Aggregator, logger *log.Logger) *ActivityHandler {
	return &ActivityHandler{agg: agg, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ActivityHandler) Routes() []string {
	return []string{"/api/wakatime"}
}

// ServeHTTP serves the activity snapshot. A summary fetch failure keeps the
// contract shape: the zeroed payload with a 500, never an error body.
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity, err := h.agg.Activity(r.Context())
	if err != nil {
		h.logger.Error("activity fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ZeroActivity())
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// profilePayload is the static site-owner data served to the page shell.
type profilePayload struct {
	Profile    shared.ProfileConfig     `json:"profile"`
	Experience []shared.ExperienceEntry `json:"experience"`
	Projects   []shared.ProjectEntry    `json:"projects"`
}

// ProfileHandler serves the configured profile, experience, and curated
// project tables. Edits to config.toml change the page without recompiling.
type ProfileHandler struct {
	payload profilePayload
}

// NewProfileHandler snapshots the static tables from configuration.
func NewProfileHandler(config *shared.Config) *ProfileHandler {
	return &ProfileHandler{payload: profilePayload{
		Profile:    config.Profile,
		Experience: config.Experience,
		Projects:   config.Projects,
	}}
}

// Routes returns the HTTP routes this handler serves.
func (h *ProfileHandler) Routes() []string {
	return []string{"/api/profile"}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.payload)
}

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"/api/health"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
