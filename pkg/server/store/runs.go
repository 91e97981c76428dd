package store

import (
	"time"

	"github.com/openaq-tools/aqsync/pkg/model"
)

// Run is a sync run as served by the API.
type Run struct {
	RunID       string          `json:"run_id"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  *time.Time      `json:"finished_at,omitempty"`
	Status      model.RunStatus `json:"status"`
	SensorCount int             `json:"sensor_count"`
	RecordCount int64           `json:"record_count"`
	Error       string          `json:"error,omitempty"`
}

// RunsStore reads sync run history.
type RunsStore interface {
	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]Run, error)

	// LastRun returns the most recent run, or nil when none exist.
	LastRun() (*Run, error)
}
