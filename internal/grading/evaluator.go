package grading

import (
	"context"
	"fmt"

	"github.com/docprobe/docprobe/internal/answers"
	"github.com/docprobe/docprobe/internal/llm"
)

// Config controls the evaluator.
type Config struct {
	MaxTokens int

	// Temperature is 0 so grades are reproducible.
	Temperature float64
}

// DefaultConfig returns the standard evaluator configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0,
	}
}

// Evaluator grades QA pairs with the rubric prompt.
type Evaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an Evaluator.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, config: cfg}
}

// Evaluate grades the given QA pairs. A reply that is not the strict
// evaluation JSON fails with *llm.ErrInvalidResponse carrying the raw text.
func (e *Evaluator) Evaluate(ctx context.Context, pairs []answers.QAPair) (*Evaluation, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no QA pairs to evaluate")
	}

	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(pairs)},
		},
		Schema:      Schema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}

	var eval Evaluation
	if err := llm.ExtractObject(resp.Content, &eval); err != nil {
		return nil, err
	}
	if len(eval.Evaluations) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("evaluation has no entries"),
		}
	}

	return &eval, nil
}
