package endpoints_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openaq-tools/aqsync/pkg/server/endpoints"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

func TestMeasurementsEndpoint(t *testing.T) {
	coverage := 95.8
	stored := []store.Measurement{
		{
			SensorID:        3917,
			Parameter:       "pm25",
			DatetimeUTC:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DatetimeLocal:   "2024-01-01T00:00:00-05:00",
			Value:           12.4,
			Units:           "µg/m³",
			CoveragePercent: &coverage,
		},
		{
			SensorID:    3917,
			Parameter:   "pm25",
			DatetimeUTC: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Value:       10.1,
			Units:       "µg/m³",
		},
	}

	t.Run("lists measurements with defaults", func(t *testing.T) {
		measurements := &mockMeasurementsStore{measurements: stored}
		srv := newTestServer(&mockHealthStore{}, measurements, &mockSensorsStore{}, &mockRunsStore{})

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/measurements", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp endpoints.MeasurementsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Measurements, 2)
		assert.Equal(t, int64(2), resp.Count)
		assert.Equal(t, 100, resp.Limit)
		assert.Equal(t, 0, resp.Offset)
		assert.Equal(t, "pm25", resp.Measurements[0].Parameter)
	})

	t.Run("passes filters through to the store", func(t *testing.T) {
		measurements := &mockMeasurementsStore{measurements: stored}
		srv := newTestServer(&mockHealthStore{}, measurements, &mockSensorsStore{}, &mockRunsStore{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			"GET",
			"/measurements?sensor_id=3917&parameter=pm25&from=1/1/2024&to=2024-06-01&limit=50&offset=10",
			nil,
		)
		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3917, measurements.lastFilter.SensorID)
		assert.Equal(t, "pm25", measurements.lastFilter.Parameter)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), measurements.lastFilter.From)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), measurements.lastFilter.To)
		assert.Equal(t, 50, measurements.lastFilter.Limit)
		assert.Equal(t, 10, measurements.lastFilter.Offset)
	})

	t.Run("caps the limit", func(t *testing.T) {
		measurements := &mockMeasurementsStore{}
		srv := newTestServer(&mockHealthStore{}, measurements, &mockSensorsStore{}, &mockRunsStore{})

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/measurements?limit=5000", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1000, measurements.lastFilter.Limit)
	})

	t.Run("rejects malformed parameters", func(t *testing.T) {
		srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, &mockSensorsStore{}, &mockRunsStore{})

		for _, query := range []string{
			"?sensor_id=abc",
			"?from=not-a-date",
			"?limit=many",
		} {
			rec := httptest.NewRecorder()
			srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/measurements"+query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code, "query: %s", query)
		}
	})
}

func TestSensorsEndpoint(t *testing.T) {
	sensors := &mockSensorsStore{
		sensors: []store.Sensor{
			{SensorID: 3917, LocationID: 2178, Parameter: "pm25", Units: "µg/m³"},
			{SensorID: 3920, LocationID: 2178, Parameter: "o3", Units: "ppm"},
		},
	}
	srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, sensors, &mockRunsStore{})

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/sensors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp endpoints.SensorsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Sensors, 2)
	assert.Equal(t, "o3", resp.Sensors[1].Parameter)
}
