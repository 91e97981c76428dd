package endpoints

import (
	"net/http"

	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

const defaultRunsLimit = 20

// RunsResponse represents the response from /runs
type RunsResponse struct {
	Runs []store.Run `json:"runs"`
}

// RegisterRunsEndpoint registers the sync run history endpoint
func RegisterRunsEndpoint(s *server.Server) {
	// GET /runs?limit= - sync run history, newest first
	s.Router.HandleFunc("/runs", handleRuns(s.RunsStore)).Methods("GET")
}

func handleRuns(runsStore store.RunsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseIntParam(r, "limit")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if limit <= 0 {
			limit = defaultRunsLimit
		}

		runs, err := runsStore.ListRuns(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list runs")
			return
		}
		writeJSON(w, http.StatusOK, RunsResponse{Runs: runs})
	}
}
