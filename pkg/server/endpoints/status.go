package endpoints

import (
	"net/http"
	"os"

	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

// StatusResponse represents the response from /
type StatusResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	LastRun *store.Run `json:"last_run,omitempty"`
}

// RegisterStatusEndpoint registers the status endpoint
func RegisterStatusEndpoint(s *server.Server) {
	// GET / - Status (no auth required)
	s.Router.HandleFunc("/", handleStatus(s.HealthStore, s.RunsStore)).Methods("GET")
}

func handleStatus(healthStore store.HealthStore, runsStore store.RunsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("AQSYNC_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if err := healthStore.CheckConnectivity(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status:  "error",
				Version: version,
			})
			return
		}

		lastRun, err := runsStore.LastRun()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read run history")
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
			LastRun: lastRun,
		})
	}
}
