package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra/llm"
)

type LLM struct {
	apiKey  types.LLMAPIKey `masq:"secret"`
	baseURL string
	model   string
	timeout time.Duration
}

func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-api-key",
			Usage:       "API key of the OpenAI compatible rewrite endpoint",
			Category:    "LLM",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("REFACTO_LLM_API_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "llm-base-url",
			Usage:       "Base URL of the OpenAI compatible API",
			Category:    "LLM",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REFACTO_LLM_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Chat completion model",
			Category:    "LLM",
			Value:       llm.DefaultModel,
			Destination: &x.model,
			Sources:     cli.EnvVars("REFACTO_LLM_MODEL"),
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout of one rewrite call",
			Category:    "LLM",
			Value:       llm.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REFACTO_LLM_TIMEOUT"),
		},
	}
}

func (x *LLM) New() (*llm.Client, error) {
	options := []llm.Option{
		llm.WithModel(x.model),
		llm.WithTimeout(x.timeout),
	}
	if x.baseURL != "" {
		options = append(options, llm.WithBaseURL(x.baseURL))
	}

	return llm.New(x.apiKey, options...)
}

func (x *LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.String("BaseURL", x.baseURL),
		slog.String("Model", x.model),
		slog.Duration("Timeout", x.timeout),
	)
}
