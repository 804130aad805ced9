package answers

import "github.com/docprobe/docprobe/internal/llm"

// Schema validates the extracted QA array before the pairs are scored.
var Schema = &llm.Schema{
	Name:        "qa-pairs",
	Description: "Question/answer pairs generated from a document",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"answer": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"required":             []any{"question", "answer"},
			"additionalProperties": false,
		},
	},
}
