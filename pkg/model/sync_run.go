package model

import "time"

// SyncRun records one invocation of the sync engine.
type SyncRun struct {
	RunID       string     `gorm:"column:run_id;primaryKey"`
	StartedAt   time.Time  `gorm:"column:started_at;not null"`
	FinishedAt  *time.Time `gorm:"column:finished_at"`
	Status      RunStatus  `gorm:"column:status;not null"`
	SensorCount int        `gorm:"column:sensor_count"`
	RecordCount int64      `gorm:"column:record_count"`
	Error       string     `gorm:"column:error"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}
