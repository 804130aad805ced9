package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanReply strips one level of fenced-code wrapping and a leading "json"
// language tag from a model reply. Models fence JSON output even when asked
// not to, so every provider runs its reply through this before validation.
//
//	"```json\n[1,2]\n```" -> "[1,2]"
//
// Only the outermost fence is removed; fences inside the payload are left
// alone. This is a pragmatic heuristic, not a markdown parser.
func CleanReply(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.Split(s, "```")
		if len(parts) >= 3 {
			s = strings.TrimSpace(parts[1])
		}
	}
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = strings.TrimSpace(s[4:])
	}
	return s
}

// ExtractArray pulls a JSON array out of a model reply. It cleans the reply,
// then scans for the first "[" and the last "]" and parses the substring
// between them. Outermost brackets only: the goal is tolerance of prose
// around the array, not validation of arbitrary JSON.
//
// On failure it returns *ErrInvalidResponse carrying the raw reply.
func ExtractArray(raw json.RawMessage) (json.RawMessage, error) {
	cleaned := CleanReply(string(raw))
	if cleaned == "" {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("empty model reply"),
		}
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("no JSON array found in model reply"),
		}
	}

	arr := json.RawMessage(cleaned[start : end+1])
	var probe []json.RawMessage
	if err := json.Unmarshal(arr, &probe); err != nil {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("parse JSON array: %w", err),
		}
	}
	if len(probe) == 0 {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("model reply is an empty JSON array"),
		}
	}
	return arr, nil
}

// ExtractObject cleans a model reply and parses it as a single JSON object.
// Used by the grading stage, whose replies must be a strict JSON object.
// On failure it returns *ErrInvalidResponse carrying the raw reply.
func ExtractObject(raw json.RawMessage, v any) error {
	cleaned := CleanReply(string(raw))
	if cleaned == "" {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("empty model reply"),
		}
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("parse JSON object: %w", err),
		}
	}
	return nil
}
