package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra/github"
)

type GitHub struct {
	clientID      types.GitHubClientID
	clientSecret  types.GitHubClientSecret  `masq:"secret"`
	appID         types.GitHubAppID
	privateKey    types.GitHubAppPrivateKey `masq:"secret"`
	webhookSecret types.WebhookSecret       `masq:"secret"`
	baseURL       string
	timeout       time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub App OAuth client ID, used to check user access tokens",
			Category:    "GitHub",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("REFACTO_GITHUB_CLIENT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub App OAuth client secret",
			Category:    "GitHub",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("REFACTO_GITHUB_CLIENT_SECRET"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional, enables installation tokens)",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REFACTO_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REFACTO_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Webhook secret to verify X-Hub-Signature-256",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("REFACTO_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REFACTO_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of one GitHub REST request",
			Category:    "GitHub",
			Value:       github.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REFACTO_GITHUB_TIMEOUT"),
		},
	}
}

func (x *GitHub) New() (*github.Client, error) {
	if x.timeout <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github-timeout must be positive", goerr.V("timeout", x.timeout))
	}
	options := []github.Option{github.WithTimeout(x.timeout)}

	if x.appID != 0 || x.privateKey != "" {
		if x.appID == 0 || x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "both github-app-id and github-app-private-key are required")
		}
		options = append(options, github.WithApp(x.appID, x.privateKey))
	}

	if x.baseURL != "" {
		u, err := url.Parse(x.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid github-base-url", goerr.V("url", x.baseURL))
		}
		options = append(options, github.WithBaseURL(u))
	}

	return github.New(x.clientID, x.clientSecret, options...)
}

func (x *GitHub) WebhookSecret() types.WebhookSecret {
	return x.webhookSecret
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", string(x.clientID)),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
		slog.String("BaseURL", x.baseURL),
		slog.Duration("Timeout", x.timeout),
	)
}
