// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "behold... my stuff!"

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchPublicRepos(ctx context.Context, owner string) ([]domain.Repository, error)
	// FetchPublicGists is only used for listing; gists never reach a card.
	FetchPublicGists(ctx context.Context, owner string) ([]domain.Gist, error)
}

// Options configures the HTTP clients behind a GitHubGateway.
type Options struct {
	Token     string
	BaseURL   string
	UserAgent string
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// gistsQuery lists a user's public gists, one page at a time.
type gistsQuery struct {
	User struct {
		Gists struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Description *string
				IsPublic    bool
				UpdatedAt   githubv4.DateTime
				Comments    struct {
					TotalCount int
				}
				Files []struct {
					Name      string
					Extension *string
					Language  *struct {
						Name string
					}
				} `graphql:"files(limit: 300)"`
			}
		} `graphql:"gists(first: 100, after: $cursor, privacy: PUBLIC)"`
	} `graphql:"user(login: $login)"`
}

// userAgentTransport stamps a fixed User-Agent on every outgoing request.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// Requests carry "Authorization: token <TOKEN>" and the configured User-Agent.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "token"})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   &userAgentTransport{base: rateLimitWaiter, userAgent: userAgent},
			Source: ts,
		},
	}

	restClient := github.NewClient(httpClient)
	restClient.UserAgent = userAgent
	graphqlClient := githubv4.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid API base URL %q: %w", domain.ErrConfig, opts.BaseURL, err)
		}
		restClient.BaseURL = baseURL
		graphqlClient = githubv4.NewEnterpriseClient(GraphQLEndpoint(baseURL), httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// GraphQLEndpoint returns the GraphQL URL served next to a REST base URL.
// GitHub Enterprise serves REST under /api/v3/ and GraphQL at /api/graphql.
func GraphQLEndpoint(restBase *url.URL) string {
	u := *restBase
	path := strings.TrimSuffix(u.Path, "/") + "/"
	if strings.HasSuffix(path, "/api/v3/") {
		u.Path = strings.TrimSuffix(path, "v3/") + "graphql"
	} else {
		u.Path = path + "graphql"
	}
	return u.String()
}

// FetchPublicRepos lists every repository of owner and keeps the public ones.
func (g *GitHubGateway) FetchPublicRepos(ctx context.Context, owner string) ([]domain.Repository, error) {
	g.logger.Printf("Fetching repositories of %s using REST API...\n", owner)
	opts := &github.RepositoryListByUserOptions{ListOptions: github.ListOptions{PerPage: 100}}
	repos := make([]domain.Repository, 0)
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, owner, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list repositories with REST API: %w", domain.ErrFetch, err)
		}
		for _, repo := range page {
			if repo.GetPrivate() {
				continue
			}
			repos = append(repos, toRepository(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching repositories: %d public.\n", len(repos))
	return repos, nil
}

func toRepository(repo *github.Repository) domain.Repository {
	var updatedAt string
	if ts := repo.GetUpdatedAt(); !ts.IsZero() {
		updatedAt = ts.UTC().Format(time.RFC3339)
	}
	return domain.Repository{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		License:     repo.GetLicense().GetKey(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		UpdatedAt:   updatedAt,
	}
}

// FetchPublicGists lists the public gists of owner that carry a description.
func (g *GitHubGateway) FetchPublicGists(ctx context.Context, owner string) ([]domain.Gist, error) {
	g.logger.Printf("Fetching gists of %s using GraphQL API...\n", owner)
	variables := map[string]interface{}{
		"login":  githubv4.String(owner),
		"cursor": (*githubv4.String)(nil),
	}
	gists := make([]domain.Gist, 0)
	for {
		var q gistsQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("%w: failed to execute GraphQL query for gists: %w", domain.ErrFetch, err)
		}
		for _, node := range q.User.Gists.Nodes {
			if !node.IsPublic || node.Description == nil || *node.Description == "" {
				continue
			}
			languages := make([]string, 0, len(node.Files))
			for _, file := range node.Files {
				switch {
				case file.Language != nil:
					languages = append(languages, strings.ToLower(file.Language.Name))
				case file.Extension != nil:
					languages = append(languages, strings.TrimPrefix(*file.Extension, "."))
				}
			}
			var updatedAt string
			if !node.UpdatedAt.IsZero() {
				updatedAt = node.UpdatedAt.UTC().Format(time.RFC3339)
			}
			gists = append(gists, domain.Gist{
				Description: *node.Description,
				Comments:    node.Comments.TotalCount,
				UpdatedAt:   updatedAt,
				Languages:   languages,
			})
		}
		if !q.User.Gists.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Gists.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of gists...")
	}
	g.logger.Printf("Completed fetching gists: %d public.\n", len(gists))
	return gists, nil
}
