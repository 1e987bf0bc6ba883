package tasks

import (
	"context"
	"fmt"

	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/shared"
	"golang.org/x/sync/errgroup"
)

// noDescription is served when neither the override file nor the upstream
// repository description yields text.
const noDescription = "No description available"

// PinnedRepos fetches the user's pinned repositories and merges in the
// per-repository description overrides.
//
// The override lookups fan out concurrently, one per repository, and the
// call joins all of them before returning: a failed lookup only loses that
// repository's override, never the request. A failure fetching the pinned
// list itself aborts with an error.
//
// Returns [shared.ErrMissingCredentials] when no GitHub token is configured.
func (a *Aggregator) PinnedRepos(ctx context.Context, username string) ([]models.PinnedRepo, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username", shared.ErrMissingArgument)
	}
	if !a.github.Configured() {
		return nil, fmt.Errorf("%w: github token", shared.ErrMissingCredentials)
	}

	nodes, err := a.github.PinnedRepositories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pinned repositories: %w", err)
	}

	overrides := make([]string, len(nodes))

	// Join-all fan-out: every goroutine returns nil so one failed override
	// lookup cannot cancel its siblings.
	var g errgroup.Group
	for i, node := range nodes {
		g.Go(func() error {
			text, err := a.github.OverrideDescription(ctx, node.Owner.Login, node.Name)
			if err != nil {
				a.logger.Warn("description override lookup failed", "repo", node.Name, "error", err)
				return nil
			}
			overrides[i] = text
			return nil
		})
	}
	g.Wait()

	repos := make([]models.PinnedRepo, 0, len(nodes))
	for i, node := range nodes {
		description := overrides[i]
		if description == "" {
			description = node.Description
		}
		if description == "" {
			description = noDescription
		}

		repos = append(repos, models.PinnedRepo{
			Name:        node.Name,
			Description: description,
			HTMLURL:     node.URL,
			Homepage:    node.HomepageURL,
			Topics:      node.TopicNames(),
			Languages:   node.LanguageNames(),
		})
	}

	return repos, nil
}
