// Package web serves the portfolio page shell: a single server-rendered
// HTML page that mounts the live widgets and polls the JSON API.
//
// The shell is intentionally thin. All data flows through the /api
// endpoints; the page only renders the static profile tables and wires up
// interval polling for the three widgets.
package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/jaedonvisva/folio/internal/shared"
)

//go:embed index.html.tmpl
var indexTemplate string

// ShellHandler renders the portfolio page.
type ShellHandler struct {
	tmpl *template.Template
	data shellData
}

type shellData struct {
	Profile     shared.ProfileConfig
	Experience  []shared.ExperienceEntry
	Projects    []shared.ProjectEntry
	PollSeconds int
}

// NewShellHandler parses the embedded template and snapshots the static
// page data from configuration.
func NewShellHandler(config *shared.Config) (*ShellHandler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	poll := config.Widgets.PollSeconds
	if poll <= 0 {
		poll = 30
	}

	return &ShellHandler{
		tmpl: tmpl,
		data: shellData{
			Profile:     config.Profile,
			Experience:  config.Experience,
			Projects:    config.Projects,
			PollSeconds: poll,
		},
	}, nil
}

// Routes returns the HTTP routes this handler serves.
func (h *ShellHandler) Routes() []string {
	return []string{"/"}
}

// ServeHTTP renders the shell. The root pattern is a catch-all in
// [http.ServeMux], so anything but "/" is a 404.
func (h *ShellHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, h.data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
