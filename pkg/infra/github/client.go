package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v53/github"
	"github.com/gregjones/httpcache"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

// DefaultTimeout bounds each GitHub REST request.
const DefaultTimeout = 30 * time.Second

// Client talks to the GitHub REST API. User-token clients are cached per
// token, each with its own response cache so cached bodies never cross
// credentials.
type Client struct {
	clientID     types.GitHubClientID
	clientSecret types.GitHubClientSecret

	appID      types.GitHubAppID
	privateKey types.GitHubAppPrivateKey

	baseURL   *url.URL
	transport http.RoundTripper
	timeout   time.Duration

	mu      sync.Mutex
	clients map[types.GitHubToken]*gh.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithApp enables installation credentials for pushes that carry an
// installation ID.
func WithApp(appID types.GitHubAppID, privateKey types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.appID = appID
		x.privateKey = privateKey
	}
}

// WithBaseURL points the client at a GitHub Enterprise or test server.
func WithBaseURL(baseURL *url.URL) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

// WithTransport replaces the bottom transport of every built client.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

// WithTimeout bounds each REST request, including retries done by the
// transport stack.
func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

func New(clientID types.GitHubClientID, clientSecret types.GitHubClientSecret, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client ID is empty")
	}
	if clientSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client secret is empty")
	}

	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		transport:    http.DefaultTransport,
		timeout:      DefaultTimeout,
		clients:      make(map[types.GitHubToken]*gh.Client),
	}
	for _, opt := range options {
		opt(client)
	}

	if client.baseURL != nil && !strings.HasSuffix(client.baseURL.Path, "/") {
		u := *client.baseURL
		u.Path += "/"
		client.baseURL = &u
	}

	return client, nil
}

func (x *Client) newGitHubClient(httpClient *http.Client) *gh.Client {
	client := gh.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

// baseTransport is the shared rate-limit aware stack: secondary rate limit
// handling on top of an ETag cache.
func (x *Client) baseTransport() http.RoundTripper {
	cache := httpcache.NewTransport(httpcache.NewMemoryCache())
	cache.Transport = x.transport
	return github_ratelimit.NewClient(cache).Transport
}

func (x *Client) tokenClient(token types.GitHubToken) *gh.Client {
	x.mu.Lock()
	defer x.mu.Unlock()

	if client, ok := x.clients[token]; ok {
		return client
	}

	client := x.newGitHubClient(&http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   x.baseTransport(),
		},
		Timeout: x.timeout,
	})
	x.clients[token] = client
	return client
}

func (x *Client) installationClient(installID types.GitHubAppInstallID) (*gh.Client, error) {
	itr, err := ghinstallation.New(x.baseTransport(), int64(x.appID), int64(installID), []byte(x.privateKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", installID),
		)
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}

	return x.newGitHubClient(&http.Client{Transport: itr, Timeout: x.timeout}), nil
}

// CheckToken implements interfaces.GitHub.
func (x *Client) CheckToken(ctx context.Context, token types.GitHubToken) error {
	tr := &gh.BasicAuthTransport{
		Username:  string(x.clientID),
		Password:  string(x.clientSecret),
		Transport: x.transport,
	}
	httpClient := tr.Client()
	httpClient.Timeout = x.timeout
	client := x.newGitHubClient(httpClient)

	_, resp, err := client.Authorizations.Check(ctx, string(x.clientID), string(token))
	if err != nil {
		var errResp *gh.ErrorResponse
		if errors.As(err, &errResp) {
			return goerr.Wrap(types.ErrCredentialExpired, "token introspection failed",
				goerr.V("status", errResp.Response.StatusCode),
			)
		}
		return types.AsExternal(goerr.Wrap(err, "failed to check token"))
	}

	logging.From(ctx).Debug("token checked", slog.Int("status", resp.StatusCode))
	return nil
}

// GetUser implements interfaces.GitHub.
func (x *Client) GetUser(ctx context.Context, token types.GitHubToken) (*model.GitHubUser, error) {
	user, _, err := x.tokenClient(token).Users.Get(ctx, "")
	if err != nil {
		return nil, types.AsExternal(goerr.Wrap(err, "failed to get authenticated user"))
	}

	return &model.GitHubUser{
		ID:      types.GitHubAccountID(user.GetID()),
		Login:   user.GetLogin(),
		Name:    user.GetName(),
		Email:   user.GetEmail(),
		Company: user.GetCompany(),
	}, nil
}

// ListRepositories implements interfaces.GitHub.
func (x *Client) ListRepositories(ctx context.Context, token types.GitHubToken) ([]*model.GitHubAPIRepository, error) {
	client := x.tokenClient(token)

	var repos []*model.GitHubAPIRepository
	opts := &gh.RepositoryListOptions{
		Affiliation: "owner",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, types.AsExternal(goerr.Wrap(err, "failed to list repositories", goerr.V("page", opts.Page)))
		}

		for _, repo := range result {
			repos = append(repos, &model.GitHubAPIRepository{
				ID:       types.GitHubRepoID(repo.GetID()),
				Owner:    repo.GetOwner().GetLogin(),
				Name:     repo.GetName(),
				FullName: repo.GetFullName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed repositories", slog.Int("count", len(repos)))

	return repos, nil
}

// Repository implements interfaces.GitHub. An installation ID is used when
// app credentials are configured; otherwise the user token is.
func (x *Client) Repository(cred *model.GitHubCredential, repo model.GitHubRepo) (interfaces.GitHubRepoClient, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	var client *gh.Client
	switch {
	case cred.InstallID != 0 && x.appID != 0 && x.privateKey != "":
		c, err := x.installationClient(cred.InstallID)
		if err != nil {
			return nil, err
		}
		client = c

	case cred.Token != "":
		client = x.tokenClient(cred.Token)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "no usable GitHub credential", goerr.V("repo", repo.FullName()))
	}

	return &repoClient{
		client:  client,
		owner:   repo.Owner,
		repo:    repo.RepoName,
		timeout: x.timeout,
	}, nil
}
