package endpoints

import (
	"net/http"

	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

const (
	defaultMeasurementsLimit = 100
	maxMeasurementsLimit     = 1000
)

// MeasurementsResponse represents the response from /measurements
type MeasurementsResponse struct {
	Measurements []store.Measurement `json:"measurements"`
	Count        int64               `json:"count"`
	Limit        int                 `json:"limit"`
	Offset       int                 `json:"offset"`
}

// RegisterMeasurementsEndpoint registers the measurements listing endpoint
func RegisterMeasurementsEndpoint(s *server.Server) {
	// GET /measurements?sensor_id=&parameter=&from=&to=&limit=&offset=
	s.Router.HandleFunc("/measurements", handleMeasurements(s.MeasurementsStore)).Methods("GET")
}

func handleMeasurements(measurementsStore store.MeasurementsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, limit, offset, err := measurementsFilter(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		count, err := measurementsStore.CountMeasurements(filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to count measurements")
			return
		}

		measurements, err := measurementsStore.ListMeasurements(filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list measurements")
			return
		}

		writeJSON(w, http.StatusOK, MeasurementsResponse{
			Measurements: measurements,
			Count:        count,
			Limit:        limit,
			Offset:       offset,
		})
	}
}

func measurementsFilter(r *http.Request) (store.MeasurementsFilter, int, int, error) {
	var filter store.MeasurementsFilter

	sensorID, err := parseIntParam(r, "sensor_id")
	if err != nil {
		return filter, 0, 0, err
	}
	limit, err := parseIntParam(r, "limit")
	if err != nil {
		return filter, 0, 0, err
	}
	offset, err := parseIntParam(r, "offset")
	if err != nil {
		return filter, 0, 0, err
	}
	from, err := parseTimeParam(r, "from")
	if err != nil {
		return filter, 0, 0, err
	}
	to, err := parseTimeParam(r, "to")
	if err != nil {
		return filter, 0, 0, err
	}

	if limit <= 0 {
		limit = defaultMeasurementsLimit
	}
	if limit > maxMeasurementsLimit {
		limit = maxMeasurementsLimit
	}
	if offset < 0 {
		offset = 0
	}

	filter = store.MeasurementsFilter{
		SensorID:  sensorID,
		Parameter: r.URL.Query().Get("parameter"),
		From:      from,
		To:        to,
		Limit:     limit,
		Offset:    offset,
	}
	return filter, limit, offset, nil
}
