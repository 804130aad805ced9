package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion backends. All three
// pipeline stages (question generation, answering, grading) go through it.
type Provider interface {
	// Generate sends a prompt and returns the model's reply. When the
	// request carries a Schema, the provider asks for structured output
	// and validates the reply against that schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single chat-completion call.
type Request struct {
	// System is the system prompt, empty when the stage has none.
	System string

	// Messages is the conversation. Every docprobe stage is single-turn,
	// so this is one user message in practice.
	Messages []Message

	// Schema, when set, requests structured output conforming to the
	// given JSON Schema. The returned Content is the validated JSON.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0-1.0.
	// All docprobe stages use 0 for reproducible output.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the reply must conform to.
type Schema struct {
	// Name identifies the schema. Used as the tool name for Anthropic
	// and the response-format name for OpenAI. Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model's reply.
type Response struct {
	// Content is the reply body. With a Schema it is the cleaned,
	// validated JSON; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through unchanged so users can pin exact IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
