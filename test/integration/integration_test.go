package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openaq-tools/aqsync/pkg/ingest"
	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/openaq"
	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/endpoints"
)

// stubOpenAQ serves canned OpenAQ v3 responses: a location with two
// sensors, and a few days of aggregates per sensor.
func stubOpenAQ(t *testing.T) *httptest.Server {
	t.Helper()

	days := map[int][]map[string]interface{}{
		101: {
			dayResult("pm25", "µg/m³", "2024-01-01", 12.4),
			dayResult("pm25", "µg/m³", "2024-01-02", 10.1),
			dayResult("pm25", "µg/m³", "2024-01-03", 15.7),
		},
		102: {
			dayResult("o3", "ppm", "2024-01-01", 0.031),
			dayResult("o3", "ppm", "2024-01-02", 0.028),
		},
	}

	router := mux.NewRouter()
	router.HandleFunc("/sensors/{id}/days", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(mux.Vars(r)["id"])
		results, ok := days[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"not found"}`))
			return
		}
		if page := r.URL.Query().Get("page"); page != "" && page != "1" {
			results = nil
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"meta":    map[string]interface{}{"page": 1, "limit": 1000},
			"results": results,
		})
	})
	router.HandleFunc("/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "2178" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"meta": {"page": 1, "limit": 100},
			"results": [{
				"id": 2178,
				"name": "Del Norte",
				"locality": "Albuquerque",
				"country": {"id": 155, "code": "US", "name": "United States"},
				"coordinates": {"latitude": 35.1353, "longitude": -106.5847},
				"sensors": [
					{"id": 101, "name": "pm25", "parameter": {"id": 2, "name": "pm25", "units": "µg/m³"}},
					{"id": 102, "name": "o3", "parameter": {"id": 10, "name": "o3", "units": "ppm"}}
				]
			}]
		}`))
	})

	return httptest.NewServer(router)
}

func dayResult(parameter, units, day string, value float64) map[string]interface{} {
	return map[string]interface{}{
		"value":     value,
		"parameter": map[string]interface{}{"name": parameter, "units": units},
		"period": map[string]interface{}{
			"label":    "1day",
			"interval": "24:00:00",
			"datetimeFrom": map[string]interface{}{
				"utc":   day + "T00:00:00Z",
				"local": day + "T00:00:00-07:00",
			},
		},
		"coverage": map[string]interface{}{
			"expectedCount":   24,
			"observedCount":   23,
			"percentComplete": 95.8,
		},
		"summary": map[string]interface{}{
			"min":    value - 1,
			"max":    value + 1,
			"median": value,
		},
	}
}

func TestSyncAndQuery(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx := context.Background()
	tc, err := NewTestContext(ctx)
	require.NoError(t, err)
	defer tc.Close(ctx)

	api := stubOpenAQ(t)
	defer api.Close()

	client := openaq.NewClient("test-key", openaq.WithBaseURL(api.URL))
	store := ingest.NewGormStore(tc.DB, 1000)
	syncer := ingest.NewSyncer(client, store, ingest.Options{
		PageSize: 1000,
		Workers:  2,
		Logger:   log.New(io.Discard),
	})

	t.Run("syncs a location into postgres", func(t *testing.T) {
		stats, err := syncer.SyncLocation(ctx, 2178, "2024-01-01", "2024-02-01")
		require.NoError(t, err)

		assert.Equal(t, model.RunStatusSucceeded, stats.Status)
		assert.Equal(t, 5, stats.Fetched)
		assert.Equal(t, int64(5), stats.Inserted)

		var count int64
		require.NoError(t, tc.DB.Table("air_quality_measurements").Count(&count).Error)
		assert.Equal(t, int64(5), count)

		require.NoError(t, tc.DB.Table("sensors").Count(&count).Error)
		assert.Equal(t, int64(2), count)

		require.NoError(t, tc.DB.Table("locations").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var run model.SyncRun
		require.NoError(t, tc.DB.Order("started_at DESC").First(&run).Error)
		assert.Equal(t, model.RunStatusSucceeded, run.Status)
		assert.Equal(t, int64(5), run.RecordCount)
		assert.NotNil(t, run.FinishedAt)
	})

	t.Run("re-syncing the same window inserts nothing", func(t *testing.T) {
		stats, err := syncer.SyncLocation(ctx, 2178, "2024-01-01", "2024-02-01")
		require.NoError(t, err)

		assert.Equal(t, model.RunStatusSucceeded, stats.Status)
		assert.Equal(t, int64(0), stats.Inserted)

		var count int64
		require.NoError(t, tc.DB.Table("air_quality_measurements").Count(&count).Error)
		assert.Equal(t, int64(5), count)
	})

	t.Run("a missing sensor leaves the run partial", func(t *testing.T) {
		stats, err := syncer.SyncSensors(ctx, []int{101, 999}, "2024-01-01", "2024-02-01")
		require.NoError(t, err)

		assert.Equal(t, model.RunStatusPartial, stats.Status)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("query API serves the synced data", func(t *testing.T) {
		s := server.NewServer(tc.DB, nil, "127.0.0.1", "0")
		endpoints.RegisterAll(s)

		apiSrv := httptest.NewServer(s.Router)
		defer apiSrv.Close()

		var status endpoints.StatusResponse
		getJSON(t, apiSrv.URL+"/", &status)
		assert.Equal(t, "ok", status.Status)
		require.NotNil(t, status.LastRun)

		var measurements endpoints.MeasurementsResponse
		getJSON(t, apiSrv.URL+"/measurements?parameter=pm25", &measurements)
		assert.Equal(t, int64(3), measurements.Count)
		assert.Len(t, measurements.Measurements, 3)
		assert.Equal(t, 101, measurements.Measurements[0].SensorID)

		var sensors endpoints.SensorsResponse
		getJSON(t, apiSrv.URL+"/sensors", &sensors)
		assert.Len(t, sensors.Sensors, 2)

		var runs endpoints.RunsResponse
		getJSON(t, apiSrv.URL+"/runs", &runs)
		assert.NotEmpty(t, runs.Runs)
	})
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("GET %s", url))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
