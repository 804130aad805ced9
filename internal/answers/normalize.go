package answers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeQuestions turns a serialized question list into a []string.
// Two wire shapes are accepted: a JSON array of strings, and a JSON array
// of {"question": "..."} objects. Anything else is an invalid-argument
// error, not a recoverable model-output error.
func NormalizeQuestions(raw []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, fmt.Errorf("question list is empty")
	}

	var asStrings []string
	if err := json.Unmarshal([]byte(trimmed), &asStrings); err == nil {
		return requireNonEmpty(asStrings)
	}

	var asObjects []struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(trimmed), &asObjects); err != nil {
		return nil, fmt.Errorf("question list is not valid JSON: %w", err)
	}

	out := make([]string, 0, len(asObjects))
	for _, o := range asObjects {
		out = append(out, o.Question)
	}
	return requireNonEmpty(out)
}

func requireNonEmpty(qs []string) ([]string, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("question list is empty")
	}
	for i, q := range qs {
		if strings.TrimSpace(q) == "" {
			return nil, fmt.Errorf("question %d is empty", i+1)
		}
	}
	return qs, nil
}
