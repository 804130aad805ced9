package grading

import "github.com/docprobe/docprobe/internal/llm"

func criterion(name string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     100,
		"description": name + " score from 0 to 100",
	}
}

// Schema is the strict shape of a grading reply. The root is an object,
// so providers can request it as structured output directly.
var Schema = &llm.Schema{
	Name:        "qa-evaluation",
	Description: "Rubric grades for question/answer pairs with an overall score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"evaluations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":     map[string]any{"type": "string"},
						"answer":       map[string]any{"type": "string"},
						"relevance":    criterion("relevance"),
						"accuracy":     criterion("accuracy"),
						"completeness": criterion("completeness"),
						"clarity":      criterion("clarity"),
						"score":        map[string]any{"type": "number"},
					},
					"required": []any{
						"question", "answer", "relevance", "accuracy",
						"completeness", "clarity", "score",
					},
					"additionalProperties": false,
				},
			},
			"overall_score": map[string]any{"type": "number"},
		},
		"required":             []any{"evaluations", "overall_score"},
		"additionalProperties": false,
	},
}
