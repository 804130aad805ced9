package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-grade",
	Description: "A single grade entry",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevance": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"score":     map[string]any{"type": "number"},
		},
		"required":             []any{"relevance", "score"},
		"additionalProperties": false,
	},
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should not validate: %v", err)
	}
}

func TestValidate_Passes(t *testing.T) {
	raw := json.RawMessage(`{"relevance": 90, "score": 86.25}`)
	if err := Validate(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `relevance is high`},
		{"wrong type", `{"relevance": "high", "score": 86.25}`},
		{"out of range", `{"relevance": 120, "score": 86.25}`},
		{"missing field", `{"relevance": 90}`},
		{"extra field", `{"relevance": 90, "score": 86.25, "vibes": 100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(testSchema, json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
			if string(invResp.Content) != tt.raw {
				t.Errorf("error should carry the raw content")
			}
		})
	}
}
