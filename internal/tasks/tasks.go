// package tasks implements the aggregation layer between the upstream
// clients and the HTTP handlers.
//
// The core abstraction is [Aggregator], which normalizes the three upstream
// APIs into the stable widget contracts in models. Each method is a single
// best-effort pass: no retries, no caching, failures degrade to the
// contract's documented default.
package tasks

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jaedonvisva/folio/internal/services"
	"github.com/jaedonvisva/folio/internal/shared"
)

// activityWindow is how recent the last heartbeat must be for the owner to
// count as currently coding.
const activityWindow = 15 * time.Minute

// Aggregator fans out to the upstream clients and reshapes their responses.
//
// Safe for concurrent use; holds no mutable state between requests.
type Aggregator struct {
	github  *services.GitHubService
	spotify *services.SpotifyService
	waka    *services.WakaTimeService
	widgets shared.WidgetsConfig
	logger  *log.Logger
	now     func() time.Time
}

// AggregatorOpts contains the dependencies for creating an [Aggregator].
type AggregatorOpts struct {
	Config     *shared.Config
	HTTPClient *http.Client
	Logger     *log.Logger
	Now        func() time.Time // wall clock override, defaults to time.Now
}

// NewAggregator constructs the aggregation engine from configuration.
// Credentials must already be loaded into the config.
func NewAggregator(opts AggregatorOpts) *Aggregator {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	creds := opts.Config.Credentials

	return &Aggregator{
		github:  services.NewGitHubService(creds.GitHub.Token, opts.HTTPClient),
		spotify: services.NewSpotifyService(creds.Spotify, opts.HTTPClient),
		waka:    services.NewWakaTimeService(creds.WakaTime.APIKey, opts.HTTPClient),
		widgets: opts.Config.Widgets,
		logger:  opts.Logger,
		now:     opts.Now,
	}
}
