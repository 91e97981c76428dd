package store

import "time"

// Measurement is a stored daily aggregate as served by the API.
type Measurement struct {
	SensorID        int       `json:"sensor_id"`
	Parameter       string    `json:"parameter"`
	DatetimeUTC     time.Time `json:"datetime_utc"`
	DatetimeLocal   string    `json:"datetime_local"`
	Value           float64   `json:"value"`
	Units           string    `json:"units"`
	CoveragePercent *float64  `json:"coverage_percent,omitempty"`
	MinValue        *float64  `json:"min_value,omitempty"`
	MaxValue        *float64  `json:"max_value,omitempty"`
	MedianValue     *float64  `json:"median_value,omitempty"`
}

// MeasurementsFilter narrows measurement queries. Zero values mean "all".
type MeasurementsFilter struct {
	SensorID  int
	Parameter string
	From      time.Time
	To        time.Time
	Limit     int
	Offset    int
}

// MeasurementsStore reads stored measurements.
type MeasurementsStore interface {
	// ListMeasurements returns measurements matching the filter,
	// ordered by sensor and time.
	ListMeasurements(f MeasurementsFilter) ([]Measurement, error)

	// CountMeasurements returns the total matching the filter,
	// ignoring limit and offset.
	CountMeasurements(f MeasurementsFilter) (int64, error)
}
