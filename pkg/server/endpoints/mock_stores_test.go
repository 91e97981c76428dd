package endpoints_test

import (
	"github.com/gorilla/mux"

	"github.com/openaq-tools/aqsync/pkg/server"
	"github.com/openaq-tools/aqsync/pkg/server/endpoints"
	"github.com/openaq-tools/aqsync/pkg/server/store"
)

type mockHealthStore struct {
	err error
}

func (m *mockHealthStore) CheckConnectivity() error {
	return m.err
}

type mockMeasurementsStore struct {
	measurements []store.Measurement
	lastFilter   store.MeasurementsFilter
	err          error
}

func (m *mockMeasurementsStore) ListMeasurements(f store.MeasurementsFilter) ([]store.Measurement, error) {
	m.lastFilter = f
	if m.err != nil {
		return nil, m.err
	}
	return m.measurements, nil
}

func (m *mockMeasurementsStore) CountMeasurements(f store.MeasurementsFilter) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.measurements)), nil
}

type mockSensorsStore struct {
	sensors []store.Sensor
	err     error
}

func (m *mockSensorsStore) ListSensors() ([]store.Sensor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sensors, nil
}

type mockRunsStore struct {
	runs      []store.Run
	lastLimit int
	err       error
}

func (m *mockRunsStore) ListRuns(limit int) ([]store.Run, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.runs) {
		limit = len(m.runs)
	}
	return m.runs[:limit], nil
}

func (m *mockRunsStore) LastRun() (*store.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.runs) == 0 {
		return nil, nil
	}
	run := m.runs[0]
	return &run, nil
}

func newTestServer(
	health *mockHealthStore,
	measurements *mockMeasurementsStore,
	sensors *mockSensorsStore,
	runs *mockRunsStore,
) *server.Server {
	s := &server.Server{
		Router:            mux.NewRouter(),
		HealthStore:       health,
		MeasurementsStore: measurements,
		SensorsStore:      sensors,
		RunsStore:         runs,
	}
	endpoints.RegisterAll(s)
	return s
}
