package endpoints

import (
	"net/http"

	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

// SensorsResponse represents the response from /sensors
type SensorsResponse struct {
	Sensors []store.Sensor `json:"sensors"`
}

// RegisterSensorsEndpoint registers the sensor catalog endpoint
func RegisterSensorsEndpoint(s *server.Server) {
	// GET /sensors - sensor catalog
	s.Router.HandleFunc("/sensors", handleSensors(s.SensorsStore)).Methods("GET")
}

func handleSensors(sensorsStore store.SensorsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sensors, err := sensorsStore.ListSensors()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list sensors")
			return
		}
		writeJSON(w, http.StatusOK, SensorsResponse{Sensors: sensors})
	}
}
