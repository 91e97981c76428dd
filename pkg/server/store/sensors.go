package store

// Sensor is a catalog entry as served by the API.
type Sensor struct {
	SensorID   int    `json:"sensor_id"`
	LocationID int    `json:"location_id,omitempty"`
	Parameter  string `json:"parameter"`
	Units      string `json:"units"`
}

// SensorsStore reads the sensor catalog.
type SensorsStore interface {
	ListSensors() ([]Sensor, error)
}
