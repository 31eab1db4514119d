package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiliankoe/storybranch/internal/ai"
)

var ErrGenerationFailed = errors.New("message generation failed")

// Completer is the part of ai.Client the generator needs.
type Completer interface {
	Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error)
}

// Generator runs the three narrative operations. It holds no per-request
// state and is safe for concurrent use if its Completer is.
type Generator struct {
	llm Completer
}

func NewGenerator(llm Completer) *Generator {
	return &Generator{llm: llm}
}

func (g *Generator) Intro(ctx context.Context, p GameParameters) (string, error) {
	return g.complete(ctx, BuildIntroPrompt(p), IntroMaxTokens)
}

// Outcomes always returns len(choices) entries on success.
func (g *Generator) Outcomes(ctx context.Context, scene string, choices []string) ([]string, error) {
	text, err := g.complete(ctx, BuildOutcomesPrompt(scene, choices), OutcomesMaxTokens)
	if err != nil {
		return nil, err
	}
	return ReconcileOutcomes(text, len(choices)), nil
}

func (g *Generator) Next(ctx context.Context, in NextSceneInput) (string, error) {
	return g.complete(ctx, BuildNarrativePrompt(in), NextMaxTokens)
}

func (g *Generator) complete(ctx context.Context, messages []ai.Message, maxTokens int) (string, error) {
	text, err := g.llm.Complete(ctx, messages, ai.Options{MaxTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return text, nil
}
