package answers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/docprobe/docprobe/internal/embedding"
	"github.com/docprobe/docprobe/internal/llm"
)

const testDocument = "The Han river flows through Seoul and is crossed by more than thirty bridges."

var testQuestions = []string{
	"Which city does the Han river flow through?",
	"How many bridges cross the Han river?",
}

func pairsJSON() json.RawMessage {
	return json.RawMessage(`[
		{"question": "Which city does the Han river flow through?", "answer": "Seoul"},
		{"question": "How many bridges cross the Han river?", "answer": "More than thirty."}
	]`)
}

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, embedding.MockEmbedder{}, DefaultConfig()), mock
}

func TestGenerate_Pairs(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{Content: pairsJSON()})

	pairs, err := gen.Generate(context.Background(), "PDF", testQuestions, testDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer != "Seoul" {
		t.Errorf("unexpected answer: %q", pairs[0].Answer)
	}
	for i, p := range pairs {
		if p.EmbeddingScore < 0 || p.EmbeddingScore > 1 {
			t.Errorf("pair %d embedding score %v outside [0,1]", i, p.EmbeddingScore)
		}
	}
}

func TestGenerate_ScoreTrendsToOneForIdenticalTexts(t *testing.T) {
	reply := json.RawMessage(`[{"question": "` + testDocument + `", "answer": "yes"}]`)
	gen, _ := newTestGenerator(llm.MockResponse{Content: reply})

	pairs, err := gen.Generate(context.Background(), "text", []string{testDocument}, testDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pairs[0].EmbeddingScore; got < 0.999 {
		t.Fatalf("question identical to document should score ~1, got %v", got)
	}
}

func TestGenerate_PromptEmbedsEverything(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{Content: pairsJSON()})

	if _, err := gen.Generate(context.Background(), "PDF", testQuestions, testDocument); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Document type: PDF") {
		t.Error("prompt should carry the document type label")
	}
	if !strings.Contains(prompt, testDocument) {
		t.Error("prompt should embed the document")
	}
	for _, q := range testQuestions {
		if !strings.Contains(prompt, q) {
			t.Errorf("prompt should embed question %q", q)
		}
	}
}

func TestGenerate_NoQuestions(t *testing.T) {
	gen, _ := newTestGenerator()

	if _, err := gen.Generate(context.Background(), "text", nil, testDocument); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_MalformedReply(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`The answers are in the document.`),
	})

	_, err := gen.Generate(context.Background(), "text", testQuestions, testDocument)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestGenerate_MissingAnswerField(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`[{"question": "Which city?"}]`),
	})

	_, err := gen.Generate(context.Background(), "text", testQuestions, testDocument)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}
