// Package answers turns probe questions into answered QA pairs with
// an embedding similarity score per pair.
package answers

// NoInformation is the canonical answer when the document does not
// contain the information a question asks for.
const NoInformation = "no information"

// QAPair is one answered question. EmbeddingScore is the cosine
// similarity between the question and the full document, in [0,1].
type QAPair struct {
	Question       string  `json:"question"`
	Answer         string  `json:"answer"`
	EmbeddingScore float64 `json:"embedding_score"`
}
