package gorm

import (
	"gorm.io/gorm"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

// Ensure MeasurementsStore implements store.MeasurementsStore
var _ store.MeasurementsStore = (*MeasurementsStore)(nil)

// MeasurementsStore implements store.MeasurementsStore using GORM
type MeasurementsStore struct {
	db *gorm.DB
}

// NewMeasurementsStore creates a new MeasurementsStore
func NewMeasurementsStore(db *gorm.DB) *MeasurementsStore {
	return &MeasurementsStore{db: db}
}

func (s *MeasurementsStore) filtered(f store.MeasurementsFilter) *gorm.DB {
	query := s.db.Model(&model.Measurement{})

	if f.SensorID != 0 {
		query = query.Where("sensor_id = ?", f.SensorID)
	}
	if f.Parameter != "" {
		query = query.Where("parameter = ?", f.Parameter)
	}
	if !f.From.IsZero() {
		query = query.Where("datetime_utc >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("datetime_utc <= ?", f.To)
	}
	return query
}

// ListMeasurements returns measurements matching the filter
func (s *MeasurementsStore) ListMeasurements(f store.MeasurementsFilter) ([]store.Measurement, error) {
	query := s.filtered(f).Order("sensor_id, parameter, datetime_utc")

	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	var rows []model.Measurement
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	measurements := make([]store.Measurement, 0, len(rows))
	for _, row := range rows {
		measurements = append(measurements, store.Measurement{
			SensorID:        row.SensorID,
			Parameter:       row.Parameter,
			DatetimeUTC:     row.DatetimeUTC,
			DatetimeLocal:   row.DatetimeLocal,
			Value:           row.Value,
			Units:           row.Units,
			CoveragePercent: row.CoveragePercent,
			MinValue:        row.MinValue,
			MaxValue:        row.MaxValue,
			MedianValue:     row.MedianValue,
		})
	}
	return measurements, nil
}

// CountMeasurements returns the count of measurements matching the filter
func (s *MeasurementsStore) CountMeasurements(f store.MeasurementsFilter) (int64, error) {
	var count int64
	if err := s.filtered(f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
