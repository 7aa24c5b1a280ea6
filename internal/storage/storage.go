// Package storage provides the durable string-keyed store the tracker
// persists into, plus the LLM request event log.
package storage

import (
	"context"
	"time"
)

// KV is the string-keyed persistence port. Everything the progress core
// persists goes through this interface, so any backend with durable
// get/set/remove semantics can stand in (the SQLite store in production,
// Memory in tests).
type KV interface {
	// GetItem returns the value for key. The second return is false when
	// the key is absent; absence is not an error.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any existing value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// LLMEvent is one recorded LLM API call.
type LLMEvent struct {
	ID           int       `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
}

// LLMUsage aggregates token consumption for one purpose label.
type LLMUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// EventRepo provides append and query access to the LLM event log.
type EventRepo interface {
	// AppendLLMRequest records one LLM API call.
	AppendLLMRequest(ctx context.Context, ev LLMEvent) error

	// QueryLLMEvents returns the most recent events, newest first.
	// limit <= 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// UsageByPurpose aggregates calls and tokens per purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
