package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LLMEventData is the payload recorded for one model call.
type LLMEventData struct {
	RunID        string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored model-call record.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// UsageStat aggregates token usage for one purpose or model.
type UsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts filters event queries.
type QueryOpts struct {
	Limit int
	RunID string
}

// EventRepo records and queries LLM call events.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)
	UsageByModel(ctx context.Context) ([]UsageStat, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO llm_events
	(run_id, provider, model, purpose, input_tokens, output_tokens,
	 latency_ms, success, error_message, request_body, response_body)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RunID, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
SELECT id, created_at, run_id, provider, model, purpose, input_tokens,
       output_tokens, latency_ms, success, error_message, request_body, response_body
FROM llm_events`
	args := []any{}
	if opts.RunID != "" {
		query += " WHERE run_id = ?"
		args = append(args, opts.RunID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, created_at, run_id, provider, model, purpose, input_tokens,
       output_tokens, latency_ms, success, error_message, request_body, response_body
FROM llm_events WHERE id = ?`, id)

	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.usage(ctx, `
SELECT purpose, '' AS model, COUNT(*), SUM(input_tokens), SUM(output_tokens),
       CAST(AVG(latency_ms) AS INTEGER)
FROM llm_events GROUP BY purpose ORDER BY purpose`)
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.usage(ctx, `
SELECT '' AS purpose, model, COUNT(*), SUM(input_tokens), SUM(output_tokens),
       CAST(AVG(latency_ms) AS INTEGER)
FROM llm_events GROUP BY model ORDER BY model`)
}

func (r *eventRepo) usage(ctx context.Context, query string) ([]UsageStat, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var stats []UsageStat
	for rows.Next() {
		var s UsageStat
		if err := rows.Scan(&s.Purpose, &s.Model, &s.Calls, &s.InputTokens,
			&s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*LLMEvent, error) {
	var e LLMEvent
	var created string
	var success int
	if err := row.Scan(&e.ID, &created, &e.RunID, &e.Provider, &e.Model,
		&e.Purpose, &e.InputTokens, &e.OutputTokens, &e.LatencyMs,
		&success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody); err != nil {
		return nil, err
	}
	e.Success = success != 0
	if t, err := time.Parse("2006-01-02T15:04:05.000Z", created); err == nil {
		e.Timestamp = t
	}
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// NopEventRepo discards all events. Used when the request log is disabled.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMEvent(context.Context, LLMEventData) error { return nil }
func (NopEventRepo) QueryLLMEvents(context.Context, QueryOpts) ([]LLMEvent, error) {
	return nil, nil
}
func (NopEventRepo) GetLLMEvent(context.Context, int) (*LLMEvent, error) { return nil, nil }
func (NopEventRepo) UsageByPurpose(context.Context) ([]UsageStat, error) { return nil, nil }
func (NopEventRepo) UsageByModel(context.Context) ([]UsageStat, error)   { return nil, nil }
