package ingest

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/openaq"
)

// Options configure a Syncer.
type Options struct {
	// PageSize is the API page size (max 1000).
	PageSize int
	// Workers bounds how many sensors are synced concurrently.
	Workers int
	// Progress enables a terminal progress bar across sensors.
	Progress bool
	// Logger defaults to a stderr logger when nil.
	Logger *log.Logger
}

// SensorStats reports the outcome of syncing one sensor.
type SensorStats struct {
	SensorID int
	Pages    int
	Fetched  int
	Inserted int64
	Err      error
}

// RunStats reports the outcome of a whole sync run.
type RunStats struct {
	RunID    string
	Status   model.RunStatus
	Sensors  []SensorStats
	Fetched  int
	Inserted int64
	Failed   int
}

// Syncer pulls daily measurements from OpenAQ and writes them through a Store.
type Syncer struct {
	client *openaq.Client
	store  Store
	opts   Options
	log    *log.Logger
}

// NewSyncer creates a Syncer.
func NewSyncer(client *openaq.Client, store Store, opts Options) *Syncer {
	if opts.PageSize <= 0 || opts.PageSize > 1000 {
		opts.PageSize = 1000
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "ingest",
		})
	}
	return &Syncer{client: client, store: store, opts: opts, log: logger}
}

// SyncSensor syncs a single sensor over the given date window.
func (s *Syncer) SyncSensor(ctx context.Context, sensorID int, from, to string) (*RunStats, error) {
	return s.SyncSensors(ctx, []int{sensorID}, from, to)
}

// SyncSensors syncs several sensors concurrently. A sensor that fails is
// recorded in the run but does not abort the others. The returned error
// covers run bookkeeping and bad input only, not per-sensor failures.
func (s *Syncer) SyncSensors(ctx context.Context, sensorIDs []int, from, to string) (*RunStats, error) {
	apiFrom, err := openaq.ParseDate(from)
	if err != nil {
		return nil, err
	}
	apiTo, err := openaq.ParseDate(to)
	if err != nil {
		return nil, err
	}

	run := &model.SyncRun{
		RunID:       uuid.NewString(),
		StartedAt:   time.Now().UTC(),
		Status:      model.RunStatusRunning,
		SensorCount: len(sensorIDs),
	}
	if err := s.store.BeginRun(run); err != nil {
		return nil, err
	}

	s.log.Info("sync started", "run_id", run.RunID, "sensors", len(sensorIDs), "from", apiFrom, "to", apiTo)

	var bar *pb.ProgressBar
	if s.opts.Progress {
		bar = pb.New(len(sensorIDs))
		bar.Start()
	}

	var (
		mu    sync.Mutex
		stats = make([]SensorStats, 0, len(sensorIDs))
	)

	var eg errgroup.Group
	eg.SetLimit(s.opts.Workers)
	for _, sensorID := range sensorIDs {
		eg.Go(func() error {
			st := s.syncOne(ctx, sensorID, apiFrom, apiTo)

			mu.Lock()
			stats = append(stats, st)
			mu.Unlock()

			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	_ = eg.Wait()

	if bar != nil {
		bar.Finish()
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].SensorID < stats[j].SensorID })

	result := &RunStats{RunID: run.RunID, Sensors: stats}
	var errMsgs []string
	for _, st := range stats {
		result.Fetched += st.Fetched
		result.Inserted += st.Inserted
		if st.Err != nil {
			result.Failed++
			errMsgs = append(errMsgs, fmt.Sprintf("sensor %d: %v", st.SensorID, st.Err))
		}
	}

	switch {
	case result.Failed == 0:
		result.Status = model.RunStatusSucceeded
	case result.Failed == len(stats):
		result.Status = model.RunStatusFailed
	default:
		result.Status = model.RunStatusPartial
	}

	now := time.Now().UTC()
	run.FinishedAt = &now
	run.Status = result.Status
	run.RecordCount = result.Inserted
	run.Error = strings.Join(errMsgs, "; ")
	if err := s.store.CompleteRun(run); err != nil {
		return result, err
	}

	s.log.Info("sync finished",
		"run_id", run.RunID,
		"status", result.Status.String(),
		"fetched", result.Fetched,
		"inserted", result.Inserted,
		"failed", result.Failed,
	)
	return result, nil
}

// SyncLocation resolves a location's sensors, refreshes the catalog tables,
// and syncs every sensor found there.
func (s *Syncer) SyncLocation(ctx context.Context, locationID int, from, to string) (*RunStats, error) {
	loc, err := s.client.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	s.log.Info("resolved location", "location_id", loc.ID, "name", loc.Name, "sensors", len(loc.Sensors))

	catalogLoc := &model.Location{
		LocationID: loc.ID,
		Name:       loc.Name,
		Locality:   loc.Locality,
		Country:    loc.Country.Code,
	}
	if loc.Coordinates != nil {
		catalogLoc.Latitude = &loc.Coordinates.Latitude
		catalogLoc.Longitude = &loc.Coordinates.Longitude
	}
	if err := s.store.UpsertLocation(catalogLoc); err != nil {
		return nil, err
	}

	sensors := make([]model.Sensor, 0, len(loc.Sensors))
	sensorIDs := make([]int, 0, len(loc.Sensors))
	for _, sensor := range loc.Sensors {
		sensors = append(sensors, model.Sensor{
			SensorID:   sensor.ID,
			LocationID: loc.ID,
			Parameter:  sensor.Parameter.Name,
			Units:      sensor.Parameter.Units,
		})
		sensorIDs = append(sensorIDs, sensor.ID)
	}
	if err := s.store.UpsertSensors(sensors); err != nil {
		return nil, err
	}

	return s.SyncSensors(ctx, sensorIDs, from, to)
}

func (s *Syncer) syncOne(ctx context.Context, sensorID int, from, to string) SensorStats {
	st := SensorStats{SensorID: sensorID}

	params := openaq.DaysParams{
		DatetimeFrom: from,
		DatetimeTo:   to,
		Limit:        s.opts.PageSize,
	}

	st.Err = s.client.WalkSensorDays(ctx, sensorID, params, func(page *openaq.MeasurementsPage) error {
		st.Pages++
		st.Fetched += len(page.Results)

		batch := flatten(sensorID, page.Results)
		inserted, err := s.store.SaveMeasurements(batch)
		if err != nil {
			return err
		}
		st.Inserted += inserted

		s.log.Debug("page saved", "sensor", sensorID, "page", st.Pages, "records", len(page.Results))
		return nil
	})

	if st.Err != nil {
		s.log.Error("sensor sync failed", "sensor", sensorID, "err", st.Err)
	} else {
		s.log.Info("sensor synced", "sensor", sensorID, "pages", st.Pages, "records", st.Fetched)
	}
	return st
}

// flatten converts API results to measurement rows. Results without a
// parseable UTC period start are dropped.
func flatten(sensorID int, results []openaq.MeasurementResult) []model.Measurement {
	rows := make([]model.Measurement, 0, len(results))
	for _, r := range results {
		if r.Period == nil || r.Period.DatetimeFrom == nil {
			continue
		}
		utc, err := time.Parse(time.RFC3339, r.Period.DatetimeFrom.UTC)
		if err != nil {
			continue
		}

		row := model.Measurement{
			SensorID:      sensorID,
			Parameter:     r.Parameter.Name,
			DatetimeUTC:   utc.UTC(),
			DatetimeLocal: r.Period.DatetimeFrom.Local,
			Value:         r.Value,
			Units:         r.Parameter.Units,
		}
		if r.Coverage != nil {
			pc := r.Coverage.PercentComplete
			row.CoveragePercent = &pc
		}
		if r.Summary != nil {
			row.MinValue = r.Summary.Min
			row.MaxValue = r.Summary.Max
			row.MedianValue = r.Summary.Median
		}
		rows = append(rows, row)
	}
	return rows
}
