package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	runKey     contextKey = "llm_run"
)

// WithPurpose attaches a stage label ("question-gen", "answer-gen",
// "grading") to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the stage label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRun attaches a run ID to the context so all calls of one pipeline
// run can be grouped in the event log.
func WithRun(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

// RunFrom extracts the run ID from the context, empty if unset.
func RunFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runKey).(string); ok {
		return v
	}
	return ""
}
