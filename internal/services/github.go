// GitHub GraphQL client for pinned repository metadata.
//
// Query shapes follow https://docs.github.com/en/graphql
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jaedonvisva/folio/internal/shared"
)

const githubGraphQLURL = "https://api.github.com/graphql"

// descriptionFile is the per-repository override read from the default
// branch head. A non-empty trimmed body replaces the repository description.
const descriptionFile = ".portfolio-description"

// PinnedRepoNode is one repository node from the pinnedItems query.
type PinnedRepoNode struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	HomepageURL string `json:"homepageUrl"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	RepositoryTopics struct {
		Nodes []struct {
			Topic struct {
				Name string `json:"name"`
			} `json:"topic"`
		} `json:"nodes"`
	} `json:"repositoryTopics"`
	Languages struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"languages"`
}

// TopicNames flattens the nested topic nodes into a name list.
func (n PinnedRepoNode) TopicNames() []string {
	names := make([]string, 0, len(n.RepositoryTopics.Nodes))
	for _, t := range n.RepositoryTopics.Nodes {
		names = append(names, t.Topic.Name)
	}
	return names
}

// LanguageNames flattens the language nodes, preserving the byte-size
// descending order requested in the query.
func (n PinnedRepoNode) LanguageNames() []string {
	names := make([]string, 0, len(n.Languages.Nodes))
	for _, l := range n.Languages.Nodes {
		names = append(names, l.Name)
	}
	return names
}

// GitHubService queries the GitHub GraphQL API with a personal access token.
type GitHubService struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewGitHubService creates a GitHub client. A nil http client falls back to
// the package default with its request timeout.
func NewGitHubService(token string, client *http.Client) *GitHubService {
	if client == nil {
		client = defaultClient
	}

	return &GitHubService{
		token:      token,
		baseURL:    githubGraphQLURL,
		httpClient: client,
	}
}

// Configured reports whether a personal access token is present.
func (s *GitHubService) Configured() bool {
	return s.token != ""
}

// graphQL posts a query document and decodes the response envelope into result.
func (s *GitHubService) graphQL(ctx context.Context, query string, result any) error {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if !okStatus(resp) {
		return fmt.Errorf("%w: github responded %d", shared.ErrUpstreamStatus, resp.StatusCode)
	}

	return decodeJSON(resp, result)
}

// PinnedRepositories fetches the user's pinned repositories (first 6,
// repositories only) with topics and top 3 languages by size.
func (s *GitHubService) PinnedRepositories(ctx context.Context, username string) ([]PinnedRepoNode, error) {
	query := fmt.Sprintf(`
		query {
			user(login: %q) {
				pinnedItems(first: 6, types: REPOSITORY) {
					nodes {
						... on Repository {
							name
							description
							url
							homepageUrl
							owner {
								login
							}
							repositoryTopics(first: 10) {
								nodes {
									topic {
										name
									}
								}
							}
							languages(first: 3, orderBy: {field: SIZE, direction: DESC}) {
								nodes {
									name
								}
							}
						}
					}
				}
			}
		}`, username)

	var response struct {
		Data struct {
			User struct {
				PinnedItems struct {
					Nodes []PinnedRepoNode `json:"nodes"`
				} `json:"pinnedItems"`
			} `json:"user"`
		} `json:"data"`
	}

	if err := s.graphQL(ctx, query, &response); err != nil {
		return nil, err
	}

	return response.Data.User.PinnedItems.Nodes, nil
}

// OverrideDescription reads the repository's description override file from
// the default branch head. Returns the trimmed text, or "" when the file is
// absent or empty.
func (s *GitHubService) OverrideDescription(ctx context.Context, owner, repo string) (string, error) {
	query := fmt.Sprintf(`
		query {
			repository(owner: %q, name: %q) {
				object(expression: "HEAD:%s") {
					... on Blob {
						text
					}
				}
			}
		}`, owner, repo, descriptionFile)

	var response struct {
		Data struct {
			Repository struct {
				Object *struct {
					Text string `json:"text"`
				} `json:"object"`
			} `json:"repository"`
		} `json:"data"`
	}

	if err := s.graphQL(ctx, query, &response); err != nil {
		return "", err
	}

	if response.Data.Repository.Object == nil {
		return "", nil
	}

	return strings.TrimSpace(response.Data.Repository.Object.Text), nil
}
