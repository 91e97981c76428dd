package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/openaq-tools/aqsync/pkg/openaq"
)

// ErrorResponse is the JSON body of error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// parseIntParam parses an optional integer query parameter.
func parseIntParam(r *http.Request, name string) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, val)
	}
	return i, nil
}

// parseTimeParam parses an optional date/datetime query parameter,
// accepting the same formats as the sync commands.
func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return time.Time{}, nil
	}

	normalized, err := openaq.ParseDate(val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %s", name, val)
	}
	t, err := time.Parse("2006-01-02T15:04:05Z", normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %s", name, val)
	}
	return t, nil
}
