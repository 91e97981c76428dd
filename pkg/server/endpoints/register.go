package endpoints

import (
	"github.com/openaq-tools/aqsync/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoint(srv)
	RegisterMeasurementsEndpoint(srv)
	RegisterSensorsEndpoint(srv)
	RegisterRunsEndpoint(srv)
}
