// Package questions generates exactly ten probe questions from a document.
package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docprobe/docprobe/internal/llm"
)

// Count is the fixed number of questions generated per document.
const Count = 10

// CountError reports a model reply whose question count is wrong.
// Items carries whatever was parsed so the caller can inspect it.
type CountError struct {
	Got   int
	Want  int
	Items []string
}

func (e *CountError) Error() string {
	return fmt.Sprintf("expected %d questions, model returned %d", e.Want, e.Got)
}

// Config controls the question generator.
type Config struct {
	// MaxTokens is the token budget for the reply.
	MaxTokens int

	// Temperature is 0 so repeated runs over the same document
	// produce the same questions.
	Temperature float64
}

// DefaultConfig returns the standard generator configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0,
	}
}

// Generator produces probe questions from document text.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate asks the model for exactly ten questions about the document.
// A reply with any other count fails with *CountError.
func (g *Generator) Generate(ctx context.Context, document string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(document)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	arr, err := llm.ExtractArray(resp.Content)
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(Schema, arr); err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal(arr, &items); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse questions: %w", err),
		}
	}

	if len(items) != Count {
		return nil, &CountError{Got: len(items), Want: Count, Items: items}
	}

	return items, nil
}
