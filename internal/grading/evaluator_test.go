package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/docprobe/docprobe/internal/answers"
	"github.com/docprobe/docprobe/internal/llm"
)

var testPairs = []answers.QAPair{
	{Question: "Which city does the Han river flow through?", Answer: "Seoul", EmbeddingScore: 0.82},
	{Question: "How many bridges cross the Han river?", Answer: "More than thirty.", EmbeddingScore: 0.77},
}

func evaluationJSON() json.RawMessage {
	return json.RawMessage(`{
		"evaluations": [
			{"question": "Which city does the Han river flow through?", "answer": "Seoul",
			 "relevance": 95, "accuracy": 90, "completeness": 80, "clarity": 92, "score": 89.25},
			{"question": "How many bridges cross the Han river?", "answer": "More than thirty.",
			 "relevance": 90, "accuracy": 85, "completeness": 75, "clarity": 88, "score": 84.5}
		],
		"overall_score": 86.875
	}`)
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: evaluationJSON()})
	eval, err := New(mock, DefaultConfig()).Evaluate(context.Background(), testPairs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(eval.Evaluations) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(eval.Evaluations))
	}
	if eval.OverallScore != 86.875 {
		t.Errorf("overall score = %v, want 86.875", eval.OverallScore)
	}
	first := eval.Evaluations[0]
	if first.Relevance != 95 || first.Accuracy != 90 || first.Completeness != 80 || first.Clarity != 92 {
		t.Errorf("unexpected criteria: %+v", first)
	}
	if first.Score != 89.25 {
		t.Errorf("score = %v, want 89.25", first.Score)
	}
}

func TestEvaluate_RequestsSchemaAndPairs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: evaluationJSON()})
	if _, err := New(mock, DefaultConfig()).Evaluate(context.Background(), testPairs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != Schema {
		t.Error("grading request should carry the evaluation schema")
	}
	if req.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", req.Temperature)
	}
	for _, p := range testPairs {
		if !strings.Contains(req.Messages[0].Content, p.Question) {
			t.Errorf("prompt should embed question %q", p.Question)
		}
		if !strings.Contains(req.Messages[0].Content, p.Answer) {
			t.Errorf("prompt should embed answer %q", p.Answer)
		}
	}
}

func TestEvaluate_FencedReply(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(evaluationJSON()) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})

	eval, err := New(mock, DefaultConfig()).Evaluate(context.Background(), testPairs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eval.Evaluations) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(eval.Evaluations))
	}
}

func TestEvaluate_MalformedReply(t *testing.T) {
	raw := json.RawMessage(`I would grade these pairs quite highly.`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})

	_, err := New(mock, DefaultConfig()).Evaluate(context.Background(), testPairs)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if string(invResp.Content) != string(raw) {
		t.Errorf("error should carry the raw reply, got %q", invResp.Content)
	}
}

func TestEvaluate_EmptyEvaluations(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"evaluations": [], "overall_score": 0}`),
	})

	_, err := New(mock, DefaultConfig()).Evaluate(context.Background(), testPairs)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestEvaluate_NoPairs(t *testing.T) {
	mock := llm.NewMockProvider()
	if _, err := New(mock, DefaultConfig()).Evaluate(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
