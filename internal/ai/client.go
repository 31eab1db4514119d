package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DefaultTemperature = 0.5
	DefaultSeed        = 1234
)

// Client issues one logical completion against a Provider with fixed
// decoding defaults and bounded retries.
type Client struct {
	provider Provider
	model    string
	retry    Retry
	limiter  *rate.Limiter
	log      zerolog.Logger
}

type ClientOption func(*Client)

func WithRetry(r Retry) ClientOption {
	return func(c *Client) { c.retry = r }
}

// WithRateLimit caps outbound attempts per second across all requests.
// rps <= 0 leaves calls unthrottled.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

func NewClient(p Provider, model string, opts ...ClientOption) *Client {
	c := &Client{
		provider: p,
		model:    model,
		retry:    DefaultRetry(),
		log:      zerologlog.Logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends messages and returns the trimmed text of the first choice.
// Nil Temperature and zero Seed/Model in opts take the client defaults. When every
// attempt fails the error wraps both ErrRetriesExhausted and the last
// attempt's ProviderError.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if err := validateMessages(messages); err != nil {
		return "", err
	}
	if opts.Model == "" {
		opts.Model = c.model
	}
	if opts.Temperature == nil {
		opts.Temperature = Float(DefaultTemperature)
	}
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}

	name := c.provider.Name()
	attempts := c.retry.Attempts()
	var text string
	err := c.retry.Do(func(attempt int) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return &ProviderError{Provider: name, Attempt: attempt, Err: err}
			}
		}
		start := time.Now()
		out, err := c.provider.Complete(ctx, messages, opts)
		llmRequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			return &ProviderError{Provider: name, Attempt: attempt, Err: err}
		}
		text = strings.TrimSpace(out)
		return nil
	}, func(attempt int, err error) {
		c.log.Warn().
			Str("provider", name).
			Str("model", opts.Model).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Err(err).
			Msg("model call failed")
		if attempt < attempts {
			llmRetriesTotal.WithLabelValues(name).Inc()
		}
	})
	if err != nil {
		llmRequestsTotal.WithLabelValues(name, "error").Inc()
		return "", fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, err)
	}
	llmRequestsTotal.WithLabelValues(name, "success").Inc()
	return text, nil
}
