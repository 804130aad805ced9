package answers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docprobe/docprobe/internal/embedding"
	"github.com/docprobe/docprobe/internal/llm"
)

// Config controls the answer generator.
type Config struct {
	// MaxTokens is the token budget for the reply. Answers quote the
	// document, so the budget is larger than the other stages'.
	MaxTokens int

	// Temperature is 0 for reproducible answers.
	Temperature float64
}

// DefaultConfig returns the standard answer generator configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0,
	}
}

// Generator answers probe questions from a document and scores each pair.
type Generator struct {
	provider llm.Provider
	embedder embedding.Embedder
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, embedder embedding.Embedder, cfg Config) *Generator {
	return &Generator{provider: provider, embedder: embedder, config: cfg}
}

// Generate answers the given questions from the document and attaches an
// embedding score to every pair. docType is a free-form label ("PDF",
// "text", ...) included in the prompt.
func (g *Generator) Generate(ctx context.Context, docType string, qs []string, document string) ([]QAPair, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("no questions to answer")
	}

	ctx = llm.WithPurpose(ctx, "answer-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(docType, document, qs)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer generation failed: %w", err)
	}

	arr, err := llm.ExtractArray(resp.Content)
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(Schema, arr); err != nil {
		return nil, err
	}

	var pairs []QAPair
	if err := json.Unmarshal(arr, &pairs); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse QA pairs: %w", err),
		}
	}

	// Score each question against the full document, not the answer:
	// the score measures how well the document supports the question.
	for i := range pairs {
		score, err := embedding.Score(ctx, g.embedder, pairs[i].Question, document)
		if err != nil {
			return nil, fmt.Errorf("embedding score for question %d: %w", i+1, err)
		}
		pairs[i].EmbeddingScore = score
	}

	return pairs, nil
}
