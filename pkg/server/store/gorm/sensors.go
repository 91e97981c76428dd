package gorm

import (
	"gorm.io/gorm"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

// Ensure SensorsStore implements store.SensorsStore
var _ store.SensorsStore = (*SensorsStore)(nil)

// SensorsStore implements store.SensorsStore using GORM
type SensorsStore struct {
	db *gorm.DB
}

// NewSensorsStore creates a new SensorsStore
func NewSensorsStore(db *gorm.DB) *SensorsStore {
	return &SensorsStore{db: db}
}

// ListSensors returns the sensor catalog ordered by id
func (s *SensorsStore) ListSensors() ([]store.Sensor, error) {
	var rows []model.Sensor
	if err := s.db.Order("sensor_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	sensors := make([]store.Sensor, 0, len(rows))
	for _, row := range rows {
		sensors = append(sensors, store.Sensor{
			SensorID:   row.SensorID,
			LocationID: row.LocationID,
			Parameter:  row.Parameter,
			Units:      row.Units,
		})
	}
	return sensors, nil
}
