package models

import "time"

// Pipeline run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Diagnostics holds the per-run observability counts from the
// validator/deduplicator. The invalid counters are counted per failing
// predicate, so one row can appear under several of them; they explain
// exclusions but never drive control flow.
type Diagnostics struct {
	RawRows           int64 `json:"raw_rows" db:"raw_rows"`
	DuplicatesRemoved int64 `json:"duplicates_removed" db:"duplicates_removed"`
	InvalidTimestamp  int64 `json:"invalid_timestamp" db:"invalid_timestamp"`
	InvalidFare       int64 `json:"invalid_fare" db:"invalid_fare"`
	InvalidDistance   int64 `json:"invalid_distance" db:"invalid_distance"`
	ZoneMismatch      int64 `json:"zone_mismatch" db:"zone_mismatch"`
	CleanRows         int64 `json:"clean_rows" db:"clean_rows"`
}

// PipelineRun tracks one full-refresh execution and its diagnostics.
type PipelineRun struct {
	ID     int64  `json:"id" db:"id"`
	Status string `json:"status" db:"status"`

	Diagnostics

	EnrichedRows  int64 `json:"enriched_rows" db:"enriched_rows"`
	BucketRows    int64 `json:"bucket_rows" db:"bucket_rows"`
	DashboardRows int64 `json:"dashboard_rows" db:"dashboard_rows"`

	ErrorMessage string     `json:"error_message,omitempty" db:"error_message"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
