package ai

import (
	"context"
	"errors"
	"fmt"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options are the decoding parameters for a single completion. A nil
// Temperature means the client default; a pointer to 0 asks for greedy
// sampling.
type Options struct {
	Model       string
	Temperature *float64
	MaxTokens   int
	Seed        int64
}

func Float(v float64) *float64 { return &v }

// Provider is a remote chat model: messages in, text out. Implementations
// do not retry; Client owns that.
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

var (
	ErrInvalidMessages  = errors.New("messages must be exactly [system, user]")
	ErrRetriesExhausted = errors.New("model retries exhausted")
	ErrMissingAPIKey    = errors.New("missing OPENAI_API_KEY")
	ErrEmptyResponse    = errors.New("model returned no choices")
)

// ProviderError is a failure of one attempt against the remote model.
type ProviderError struct {
	Provider string
	Attempt  int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s attempt %d: %v", e.Provider, e.Attempt, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PromptPair builds the two-message list every operation sends.
func PromptPair(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}

func validateMessages(messages []Message) error {
	if len(messages) != 2 || messages[0].Role != RoleSystem || messages[1].Role != RoleUser {
		return ErrInvalidMessages
	}
	return nil
}
