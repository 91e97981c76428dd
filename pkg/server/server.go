package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/openaq-tools/aqsync/pkg/config"
	"github.com/openaq-tools/aqsync/pkg/server/store"
	gormstore "github.com/openaq-tools/aqsync/pkg/server/store/gorm"
)

// Server is the read-only query API over the synced data.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	HealthStore       store.HealthStore
	MeasurementsStore store.MeasurementsStore
	SensorsStore      store.SensorsStore
	RunsStore         store.RunsStore

	srv *http.Server
}

// NewServer creates a server bound to host:port with gorm-backed stores.
func NewServer(db *gorm.DB, cfg *config.Config, host, port string) *Server {
	router := mux.NewRouter()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:            router,
		DB:                db,
		Config:            cfg,
		HealthStore:       gormstore.NewHealthStore(db),
		MeasurementsStore: gormstore.NewMeasurementsStore(db),
		SensorsStore:      gormstore.NewSensorsStore(db),
		RunsStore:         gormstore.NewRunsStore(db),
		srv:               srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
