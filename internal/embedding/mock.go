package embedding

import (
	"context"
	"crypto/sha256"
)

// MockEmbedder is a deterministic Embedder for tests. It derives a fixed
// vector from a hash of the text, so identical texts always score 1 and
// different texts score somewhere below.
type MockEmbedder struct{}

func (MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	sum := sha256.Sum256([]byte(text))
	vec := make([]float32, len(sum))
	for i, b := range sum {
		vec[i] = float32(b) + 1 // strictly positive, never a zero vector
	}
	return vec, nil
}
