package embedding

import (
	"context"
	"fmt"
	"os"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds embedding backend configuration.
type Config struct {
	APIKey  string
	Model   string // Default: "text-embedding-3-small"
	BaseURL string // Optional override for compatible APIs.
}

// ConfigFromEnv builds a Config from DOCPROBE_EMBEDDING_* variables,
// falling back to the OpenAI chat credentials.
func ConfigFromEnv() Config {
	cfg := Config{Model: "text-embedding-3-small"}

	cfg.APIKey = os.Getenv("DOCPROBE_EMBEDDING_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DOCPROBE_OPENAI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if m := os.Getenv("DOCPROBE_EMBEDDING_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("DOCPROBE_EMBEDDING_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	return cfg
}

// Validate checks that the embedding credential is set.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCPROBE_EMBEDDING_API_KEY (or OPENAI_API_KEY) is required for embedding scores")
	}
	return nil
}

// OpenAIEmbedder implements Embedder with the OpenAI embeddings API.
// Results are cached per text: one run embeds the same document once
// and ten questions, nothing more.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel

	mu    sync.Mutex
	cache map[string][]float32
}

// NewOpenAIEmbedder creates an embedder from Config.
func NewOpenAIEmbedder(cfg Config) (*OpenAIEmbedder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  openai.EmbeddingModel(cfg.Model),
		cache:  make(map[string][]float32),
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	if vec, ok := e.cache[text]; ok {
		e.mu.Unlock()
		return vec, nil
	}
	e.mu.Unlock()

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	vec := resp.Data[0].Embedding

	e.mu.Lock()
	e.cache[text] = vec
	e.mu.Unlock()

	return vec, nil
}
