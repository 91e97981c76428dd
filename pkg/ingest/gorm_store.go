package ingest

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openaq-tools/aqsync/pkg/model"
)

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store using GORM for database operations.
type GormStore struct {
	db        *gorm.DB
	batchSize int
}

// NewGormStore creates a new GormStore. batchSize controls how many
// measurement rows are written per INSERT.
func NewGormStore(db *gorm.DB, batchSize int) *GormStore {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &GormStore{db: db, batchSize: batchSize}
}

// BeginRun persists a new sync run record.
func (s *GormStore) BeginRun(run *model.SyncRun) error {
	if err := s.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}
	return nil
}

// CompleteRun updates a run with its final status and counters.
func (s *GormStore) CompleteRun(run *model.SyncRun) error {
	if err := s.db.Save(run).Error; err != nil {
		return fmt.Errorf("failed to update sync run: %w", err)
	}
	return nil
}

// SaveMeasurements inserts measurements in batches. Rows that collide on
// (sensor_id, parameter, datetime_utc) are skipped, which makes re-syncing
// a window idempotent.
func (s *GormStore) SaveMeasurements(batch []model.Measurement) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "sensor_id"},
			{Name: "parameter"},
			{Name: "datetime_utc"},
		},
		DoNothing: true,
	}).CreateInBatches(&batch, s.batchSize)
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to save measurements: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// UpsertLocation creates or refreshes a location catalog row.
func (s *GormStore) UpsertLocation(loc *model.Location) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}},
		UpdateAll: true,
	}).Create(loc).Error
	if err != nil {
		return fmt.Errorf("failed to upsert location %d: %w", loc.LocationID, err)
	}
	return nil
}

// UpsertSensors creates or refreshes sensor catalog rows.
func (s *GormStore) UpsertSensors(sensors []model.Sensor) error {
	if len(sensors) == 0 {
		return nil
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sensor_id"}},
		UpdateAll: true,
	}).Create(&sensors).Error
	if err != nil {
		return fmt.Errorf("failed to upsert sensors: %w", err)
	}
	return nil
}
