package ingest

import "github.com/openaq-tools/aqsync/pkg/model"

// Store abstracts the storage operations of the sync engine.
// This allows the syncer to work with different backends (e.g. database,
// mock for testing).
type Store interface {
	// BeginRun persists a new sync run record in the running state.
	BeginRun(run *model.SyncRun) error

	// CompleteRun updates a run with its final status and counters.
	CompleteRun(run *model.SyncRun) error

	// SaveMeasurements inserts a batch of measurements, skipping rows
	// that already exist. Returns the number of rows actually inserted.
	SaveMeasurements(batch []model.Measurement) (int64, error)

	// UpsertLocation creates or refreshes a location catalog row.
	UpsertLocation(loc *model.Location) error

	// UpsertSensors creates or refreshes sensor catalog rows.
	UpsertSensors(sensors []model.Sensor) error
}
