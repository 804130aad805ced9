// Package pipeline runs the full docprobe flow: generate questions,
// answer them, score question/document similarity, grade the pairs,
// and persist the combined result.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docprobe/docprobe/internal/answers"
	"github.com/docprobe/docprobe/internal/embedding"
	"github.com/docprobe/docprobe/internal/grading"
	"github.com/docprobe/docprobe/internal/llm"
	"github.com/docprobe/docprobe/internal/questions"
)

// Input is one pipeline run request.
type Input struct {
	// Document is the full document text.
	Document string

	// DocType is a free-form label for the document ("PDF", "text", ...).
	DocType string

	// Questions, when non-empty, skips the question stage and answers
	// these instead.
	Questions []string

	// OutPath is where the result JSON is written. Empty skips the write.
	OutPath string
}

// Output is the outcome of a pipeline run.
type Output struct {
	// RunID tags every model call of this run in the event log.
	RunID string

	Result *Result
}

// Pipeline wires the three model stages together.
type Pipeline struct {
	questions *questions.Generator
	answers   *answers.Generator
	grading   *grading.Evaluator
}

// New builds a Pipeline from a provider and an embedder with default
// stage configurations.
func New(provider llm.Provider, embedder embedding.Embedder) *Pipeline {
	return &Pipeline{
		questions: questions.New(provider, questions.DefaultConfig()),
		answers:   answers.New(provider, embedder, answers.DefaultConfig()),
		grading:   grading.New(provider, grading.DefaultConfig()),
	}
}

// Run executes the full flow for one document. Each stage is a single
// model call; the first failure stops the run.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Output, error) {
	if in.Document == "" {
		return nil, fmt.Errorf("document text is empty")
	}
	docType := in.DocType
	if docType == "" {
		docType = "text"
	}

	runID := uuid.New().String()
	ctx = llm.WithRun(ctx, runID)

	qs := in.Questions
	if len(qs) == 0 {
		var err error
		qs, err = p.questions.Generate(ctx, in.Document)
		if err != nil {
			return nil, fmt.Errorf("generate questions: %w", err)
		}
	}

	pairs, err := p.answers.Generate(ctx, docType, qs, in.Document)
	if err != nil {
		return nil, fmt.Errorf("generate answers: %w", err)
	}

	eval, err := p.grading.Evaluate(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("evaluate QA pairs: %w", err)
	}

	result := &Result{
		QAPairs:    pairs,
		Evaluation: eval,
	}

	if in.OutPath != "" {
		if err := result.WriteFile(in.OutPath); err != nil {
			return nil, fmt.Errorf("write result: %w", err)
		}
	}

	return &Output{RunID: runID, Result: result}, nil
}
