package endpoints_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/server/endpoints"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

func TestStatusEndpoint(t *testing.T) {
	finished := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lastRun := store.Run{
		RunID:       "b5fe5f55-31b2-4f63-92f1-e43f0b2c17e4",
		StartedAt:   finished.Add(-2 * time.Minute),
		FinishedAt:  &finished,
		Status:      model.RunStatusSucceeded,
		SensorCount: 3,
		RecordCount: 42,
	}

	t.Run("reports ok with the last run", func(t *testing.T) {
		srv := newTestServer(
			&mockHealthStore{},
			&mockMeasurementsStore{},
			&mockSensorsStore{},
			&mockRunsStore{runs: []store.Run{lastRun}},
		)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp endpoints.StatusResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.NotEmpty(t, resp.Version)
		if assert.NotNil(t, resp.LastRun) {
			assert.Equal(t, lastRun.RunID, resp.LastRun.RunID)
			assert.Equal(t, int64(42), resp.LastRun.RecordCount)
		}
	})

	t.Run("omits last run when no sync has happened", func(t *testing.T) {
		srv := newTestServer(
			&mockHealthStore{},
			&mockMeasurementsStore{},
			&mockSensorsStore{},
			&mockRunsStore{},
		)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "last_run")
	})

	t.Run("reports unavailable when the database is down", func(t *testing.T) {
		srv := newTestServer(
			&mockHealthStore{err: errors.New("connection refused")},
			&mockMeasurementsStore{},
			&mockSensorsStore{},
			&mockRunsStore{},
		)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp endpoints.StatusResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	})
}
