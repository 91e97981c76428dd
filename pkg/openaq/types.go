package openaq

// Meta is the paging envelope returned with every list response.
type Meta struct {
	Name  string `json:"name"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// DatetimePair holds a timestamp in UTC and in the station's local offset.
type DatetimePair struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

// Period describes the aggregation window of a measurement.
type Period struct {
	Label        string        `json:"label"`
	Interval     string        `json:"interval"`
	DatetimeFrom *DatetimePair `json:"datetimeFrom"`
	DatetimeTo   *DatetimePair `json:"datetimeTo"`
}

// ParameterInfo identifies the measured pollutant and its units.
type ParameterInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Units string `json:"units"`
}

// Coverage reports how complete the aggregation window was.
type Coverage struct {
	ExpectedCount   int     `json:"expectedCount"`
	ObservedCount   int     `json:"observedCount"`
	PercentComplete float64 `json:"percentComplete"`
}

// Summary holds the distribution statistics of an aggregation window.
type Summary struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Median *float64 `json:"median"`
	Avg    *float64 `json:"avg"`
	SD     *float64 `json:"sd"`
}

// MeasurementResult is one aggregate row from /sensors/{id}/days.
type MeasurementResult struct {
	Value     float64       `json:"value"`
	Parameter ParameterInfo `json:"parameter"`
	Period    *Period       `json:"period"`
	Coverage  *Coverage     `json:"coverage"`
	Summary   *Summary      `json:"summary"`
}

// MeasurementsPage is one page of measurement results.
type MeasurementsPage struct {
	Meta    Meta                `json:"meta"`
	Results []MeasurementResult `json:"results"`
}

// CountryInfo identifies the country of a location.
type CountryInfo struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSensor is a sensor as listed under a location.
type LocationSensor struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Parameter ParameterInfo `json:"parameter"`
}

// Location is a monitoring site and its sensors.
type Location struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Locality    *string          `json:"locality"`
	Country     CountryInfo      `json:"country"`
	Coordinates *Coordinates     `json:"coordinates"`
	Sensors     []LocationSensor `json:"sensors"`
}

// LocationsPage is the response envelope of /locations/{id}.
type LocationsPage struct {
	Meta    Meta       `json:"meta"`
	Results []Location `json:"results"`
}
