package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kiliankoe/storybranch/internal/ai"
	"github.com/ollama/ollama/api"
)

// Client is a Provider for a self-hosted Ollama daemon.
type Client struct {
	Host string
	api  *api.Client
}

func New(host string, timeout time.Duration) (*Client, error) {
	if host == "" {
		host = "http://localhost:11434"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	host = strings.TrimSuffix(strings.TrimRight(host, "/"), "/v1")
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parsing ollama host %q: %w", host, err)
	}
	return &Client{Host: host, api: api.NewClient(u, &http.Client{Timeout: timeout})}, nil
}

func (c *Client) Name() string { return "ollama" }

func (c *Client) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	msgs := make([]api.Message, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, api.Message{Role: string(m.Role), Content: m.Content})
	}
	stream := false
	req := &api.ChatRequest{
		Model:    opts.Model,
		Messages: msgs,
		Stream:   &stream,
		Options: map[string]any{
			"seed": opts.Seed,
		},
	}
	if opts.Temperature != nil {
		req.Options["temperature"] = *opts.Temperature
	}
	if opts.MaxTokens > 0 {
		req.Options["num_predict"] = opts.MaxTokens
	}

	var resp api.ChatResponse
	err := c.api.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	text := strings.TrimSpace(resp.Message.Content)
	if text == "" {
		return "", ai.ErrEmptyResponse
	}
	return text, nil
}
