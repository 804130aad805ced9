// Package embedding scores text similarity with vector embeddings.
// The answer stage uses it to attach an embedding_score to each QA pair:
// the cosine similarity between the question and the full document.
package embedding

import (
	"context"
	"math"
)

// Embedder produces a vector embedding for a text snippet.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of two vectors, clamped to [0,1].
// Mismatched or zero-length vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Float rounding can push identical vectors past 1, and unrelated
	// texts can dip below 0. The reported score is always in [0,1].
	return math.Min(1, math.Max(0, score))
}

// Score embeds both texts and returns their cosine similarity.
func Score(ctx context.Context, e Embedder, a, b string) (float64, error) {
	va, err := e.Embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := e.Embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Cosine(va, vb), nil
}
