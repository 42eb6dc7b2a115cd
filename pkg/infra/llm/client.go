package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

const (
	DefaultModel   = openai.GPT3Dot5Turbo
	DefaultTimeout = 120 * time.Second

	temperature = 1.0
)

// Client rewrites files through an OpenAI compatible chat completion API.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	prompts *prompts
}

var _ interfaces.Rewriter = (*Client)(nil)

type config struct {
	baseURL string
	model   string
	timeout time.Duration
}

type Option func(*config)

func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

func WithModel(model string) Option {
	return func(c *config) {
		c.model = model
	}
}

// WithTimeout bounds each completion call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

func New(apiKey types.LLMAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "LLM API key is empty")
	}

	cfg := &config{
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	p, err := loadPrompts(promptYAML)
	if err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(string(apiKey))
	if cfg.baseURL != "" {
		clientConfig.BaseURL = cfg.baseURL
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.model,
		timeout: cfg.timeout,
		prompts: p,
	}, nil
}

// Rewrite implements interfaces.Rewriter.
func (x *Client) Rewrite(ctx context.Context, file *model.FileRecord) (*model.RewrittenFile, error) {
	userMsg, err := x.prompts.userMessage(file)
	if err != nil {
		return nil, err
	}

	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	resp, err := x.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: x.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: x.prompts.system},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, types.AsExternal(goerr.Wrap(err, "chat completion failed",
			goerr.V("filename", file.Filename),
			goerr.V("model", x.model),
		))
	}
	if len(resp.Choices) == 0 {
		return nil, goerr.Wrap(types.ErrMalformedRewrite, "no choice in completion", goerr.V("filename", file.Filename))
	}

	logging.From(ctx).Debug("received rewrite",
		slog.String("filename", file.Filename),
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return parseRewrite(file.Filename, resp.Choices[0].Message.Content)
}
