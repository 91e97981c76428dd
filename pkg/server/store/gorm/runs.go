package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

// Ensure RunsStore implements store.RunsStore
var _ store.RunsStore = (*RunsStore)(nil)

// RunsStore implements store.RunsStore using GORM
type RunsStore struct {
	db *gorm.DB
}

// NewRunsStore creates a new RunsStore
func NewRunsStore(db *gorm.DB) *RunsStore {
	return &RunsStore{db: db}
}

// ListRuns returns the most recent runs, newest first
func (s *RunsStore) ListRuns(limit int) ([]store.Run, error) {
	query := s.db.Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.SyncRun
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	runs := make([]store.Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, toRun(row))
	}
	return runs, nil
}

// LastRun returns the most recent run, or nil when none exist
func (s *RunsStore) LastRun() (*store.Run, error) {
	var row model.SyncRun
	err := s.db.Order("started_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	run := toRun(row)
	return &run, nil
}

func toRun(row model.SyncRun) store.Run {
	return store.Run{
		RunID:       row.RunID,
		StartedAt:   row.StartedAt,
		FinishedAt:  row.FinishedAt,
		Status:      row.Status,
		SensorCount: row.SensorCount,
		RecordCount: row.RecordCount,
		Error:       row.Error,
	}
}
