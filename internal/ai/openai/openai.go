package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kiliankoe/storybranch/internal/ai"
	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Client is the chat-completions Provider. SDK-level retries are disabled;
// ai.Client owns the retry policy.
type Client struct {
	APIKey  string
	BaseURL string
	sdk     sdk.Client
}

func New(apiKey, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		baseURL = strings.TrimRight(baseURL, "/") + "/"
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{APIKey: apiKey, BaseURL: baseURL, sdk: sdk.NewClient(opts...)}
}

func (c *Client) Name() string { return "openai" }

func (c *Client) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	if c.APIKey == "" {
		return "", ai.ErrMissingAPIKey
	}

	params := sdk.ChatCompletionNewParams{
		Model:    shared.ChatModel(opts.Model),
		Messages: toParams(messages),
		Seed:     sdk.Int(opts.Seed),
	}
	if opts.Temperature != nil {
		params.Temperature = sdk.Float(*opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(opts.MaxTokens))
	}

	completion, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ai.ErrEmptyResponse
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ai.ErrEmptyResponse
	}
	return text, nil
}

func toParams(messages []ai.Message) []sdk.ChatCompletionMessageParamUnion {
	out := make([]sdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case ai.RoleSystem:
			out = append(out, sdk.SystemMessage(m.Content))
		default:
			out = append(out, sdk.UserMessage(m.Content))
		}
	}
	return out
}
