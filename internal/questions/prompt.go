package questions

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an analyst writing comprehension questions for a document.

Rules:
- Generate exactly 10 questions grounded in the document content.
- Questions must be concise and meaningful; each must be answerable from the document alone.
- Do not number the questions inside their text.
- Output a JSON array of 10 strings and nothing else.`

// buildUserMessage constructs the user message embedding the document.
func buildUserMessage(document string) string {
	var b strings.Builder

	b.WriteString("Generate 10 questions from the following document.\n\n")
	b.WriteString("Document content:\n")
	b.WriteString(document)
	b.WriteString("\n\nOutput format (JSON):\n[\n")
	for i := 1; i <= Count; i++ {
		fmt.Fprintf(&b, "    \"question %d\"", i)
		if i < Count {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")

	return b.String()
}
