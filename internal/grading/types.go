// Package grading has the model grade its own QA pairs against a fixed
// four-criteria rubric.
package grading

// PairEvaluation is the rubric grade for one QA pair. The four criteria
// are integers in 0-100; Score is their average.
type PairEvaluation struct {
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Relevance    int     `json:"relevance"`
	Accuracy     int     `json:"accuracy"`
	Completeness int     `json:"completeness"`
	Clarity      int     `json:"clarity"`
	Score        float64 `json:"score"`
}

// Evaluation is the grade for a full QA collection. OverallScore is the
// average of the per-pair scores.
type Evaluation struct {
	Evaluations  []PairEvaluation `json:"evaluations"`
	OverallScore float64          `json:"overall_score"`
}
