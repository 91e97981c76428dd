package endpoints_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/server/endpoints"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

func TestRunsEndpoint(t *testing.T) {
	var runs []store.Run
	for i := 0; i < 30; i++ {
		runs = append(runs, store.Run{
			RunID:     fmt.Sprintf("run-%02d", i),
			StartedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Hour),
			Status:    model.RunStatusSucceeded,
		})
	}

	t.Run("lists recent runs with the default limit", func(t *testing.T) {
		runsStore := &mockRunsStore{runs: runs}
		srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, &mockSensorsStore{}, runsStore)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 20, runsStore.lastLimit)

		var resp endpoints.RunsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Runs, 20)
		assert.Equal(t, "run-00", resp.Runs[0].RunID)
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		runsStore := &mockRunsStore{runs: runs}
		srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, &mockSensorsStore{}, runsStore)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/runs?limit=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, runsStore.lastLimit)
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, &mockSensorsStore{}, &mockRunsStore{})

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/runs?limit=all", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("serializes run status as a string", func(t *testing.T) {
		runsStore := &mockRunsStore{runs: []store.Run{{RunID: "run-00", Status: model.RunStatusPartial}}}
		srv := newTestServer(&mockHealthStore{}, &mockMeasurementsStore{}, &mockSensorsStore{}, runsStore)

		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/runs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"partial"`)
	})
}
