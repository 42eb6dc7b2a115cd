package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
)

const DefaultPipelineTimeout = 10 * time.Minute

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	webhookSecret   types.WebhookSecret
	apiToken        string
	debug           bool
	pipelineTimeout time.Duration
}

type Option func(*config)

// WithWebhookSecret enables X-Hub-Signature-256 verification.
func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

// WithAPIToken requires a bearer token on /api routes.
func WithAPIToken(token string) Option {
	return func(cfg *config) {
		cfg.apiToken = token
	}
}

// WithDebug adds the error stack to error responses.
func WithDebug(debug bool) Option {
	return func(cfg *config) {
		cfg.debug = debug
	}
}

func WithPipelineTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.pipelineTimeout = timeout
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		pipelineTimeout: DefaultPipelineTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", handleGitHubWebhook(uc, cfg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authorize(cfg.apiToken, cfg.debug))
		r.Route("/accounts/{accountID}", func(r chi.Router) {
			r.Get("/configuration", getConfiguration(uc, cfg))
			r.Post("/configuration", postConfiguration(uc, cfg))
			r.Get("/pull-requests", listPullRequests(uc, cfg))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
