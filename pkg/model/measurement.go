package model

import "time"

// Measurement is one daily aggregate reported by an OpenAQ sensor.
type Measurement struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SensorID      int       `gorm:"column:sensor_id;not null"`
	Parameter     string    `gorm:"column:parameter;not null"`
	DatetimeUTC   time.Time `gorm:"column:datetime_utc;not null"`
	DatetimeLocal string    `gorm:"column:datetime_local"`
	Value         float64   `gorm:"column:value;not null"`
	Units         string    `gorm:"column:units"`

	// Coverage and summary fields are nullable; the API omits them for
	// sensors without enough observations in the period.
	CoveragePercent *float64 `gorm:"column:coverage_percent"`
	MinValue        *float64 `gorm:"column:min_value"`
	MaxValue        *float64 `gorm:"column:max_value"`
	MedianValue     *float64 `gorm:"column:median_value"`
}

func (Measurement) TableName() string {
	return "air_quality_measurements"
}
