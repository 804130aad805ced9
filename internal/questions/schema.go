package questions

import "github.com/docprobe/docprobe/internal/llm"

// Schema validates the extracted question array: strings only. The exact
// count is enforced separately so a wrong count surfaces as *CountError
// rather than a generic schema failure.
var Schema = &llm.Schema{
	Name:        "probe-questions",
	Description: "A JSON array of comprehension questions about a document",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
	},
}
