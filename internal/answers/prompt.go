package answers

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You answer questions using only the content of a given document.

Rules:
- Answer each question specifically and clearly, based only on the document.
- If the document does not contain the answer, output exactly "no information" as the answer.
- Keep the questions verbatim; do not rephrase them.
- Output a JSON array of {"question", "answer"} objects and nothing else.`

// buildUserMessage embeds the document type, content, and question list.
func buildUserMessage(docType, document string, qs []string) string {
	// The question list goes in as JSON so the model echoes it verbatim.
	questionsJSON, _ := json.MarshalIndent(qs, "", "    ")

	var b strings.Builder

	fmt.Fprintf(&b, "Document type: %s\n", docType)
	b.WriteString("Document content:\n")
	b.WriteString(document)
	b.WriteString("\n\nQuestions:\n")
	b.Write(questionsJSON)
	b.WriteString("\n\nOutput format (JSON):\n")
	b.WriteString(`[
    {
        "question": "the question text",
        "answer": "a specific, clear answer from the document"
    }
]`)

	return b.String()
}
