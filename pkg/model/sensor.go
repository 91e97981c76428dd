package model

// Sensor is an individual instrument at a location, measuring one parameter.
type Sensor struct {
	SensorID   int    `gorm:"column:sensor_id;primaryKey"`
	LocationID int    `gorm:"column:location_id"`
	Parameter  string `gorm:"column:parameter"`
	Units      string `gorm:"column:units"`
}

func (Sensor) TableName() string {
	return "sensors"
}
