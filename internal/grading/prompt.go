package grading

import (
	"encoding/json"
	"strings"

	"github.com/docprobe/docprobe/internal/answers"
)

const systemPrompt = `You grade question/answer pairs that were generated from a document.

Score every pair on four criteria, each from 0 to 100:
1. relevance: how related the question and answer are to the document content.
2. accuracy: whether the answer reflects the document's information correctly.
3. completeness: whether the answer is sufficient and complete for the question.
4. clarity: whether the answer is clear and easy to understand.

Compute "score" for each pair as the average of its four criteria, and
"overall_score" as the average of all pair scores.

Output only pure JSON. No explanations, no markdown, no extra text.`

// buildUserMessage embeds the QA pairs and the exact output shape.
func buildUserMessage(pairs []answers.QAPair) string {
	pairsJSON, _ := json.MarshalIndent(pairs, "", "    ")

	var b strings.Builder

	b.WriteString("Output example:\n")
	b.WriteString(`{"evaluations": [
    {"question": "first question", "answer": "first answer", "relevance": 90, "accuracy": 85, "completeness": 80, "clarity": 88, "score": 85.75},
    {"question": "second question", "answer": "second answer", "relevance": 80, "accuracy": 82, "completeness": 78, "clarity": 85, "score": 81.25}
], "overall_score": 83.5}`)
	b.WriteString("\n\nInput data:\n")
	b.Write(pairsJSON)

	return b.String()
}
