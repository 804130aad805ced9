package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docprobe/docprobe/internal/answers"
	"github.com/docprobe/docprobe/internal/grading"
)

// DefaultOutPath is where results land when no --out flag is given.
const DefaultOutPath = "Result.json"

// Result is the persisted outcome: the scored QA pairs plus their grades.
type Result struct {
	QAPairs    []answers.QAPair    `json:"qa_pairs"`
	Evaluation *grading.Evaluation `json:"evaluation"`
}

// Marshal renders the result as UTF-8 JSON with 4-space indentation.
func (r *Result) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile persists the result to path.
func (r *Result) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadQAPairs loads a QA-pair collection from a result file or a bare
// qa_pairs array, for grading existing pairs.
func ReadQAPairs(path string) ([]answers.QAPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err == nil && len(res.QAPairs) > 0 {
		return res.QAPairs, nil
	}

	var pairs []answers.QAPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%s is neither a result file nor a QA-pair array: %w", path, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%s contains no QA pairs", path)
	}
	return pairs, nil
}
