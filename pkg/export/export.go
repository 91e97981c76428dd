// Package export streams stored measurements out of PostgreSQL as CSV.
package export

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

// Filter narrows which measurements are exported. Zero values mean "all".
type Filter struct {
	SensorID  int
	Parameter string
	From      time.Time
	To        time.Time
}

// Exporter reads measurements with a plain database connection.
type Exporter struct {
	db *sql.DB
}

// NewExporter creates an exporter from DATABASE_URL.
func NewExporter() (*Exporter, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}
	return &Exporter{db: db}, nil
}

// NewExporterWithDB creates an exporter with an existing database connection
// Useful for testing with sqlmock
func NewExporterWithDB(db *sql.DB) *Exporter {
	return &Exporter{db: db}
}

// Close closes the database connection
func (e *Exporter) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

// header matches the column layout the CSV consumers expect.
var header = []string{
	"sensor_id", "parameter", "datetime_utc", "datetime_local",
	"value", "units", "coverage_percent", "min_value", "max_value", "median_value",
}

// WriteCSV streams matching measurements to w, ordered by sensor and time.
// Returns the number of data rows written.
func (e *Exporter) WriteCSV(w io.Writer, f Filter) (int, error) {
	query := `
		SELECT sensor_id, parameter, datetime_utc, datetime_local,
		       value, units, coverage_percent, min_value, max_value, median_value
		FROM air_quality_measurements
		WHERE 1=1
	`
	var args []interface{}
	n := 1

	if f.SensorID != 0 {
		query += fmt.Sprintf(" AND sensor_id = $%d", n)
		args = append(args, f.SensorID)
		n++
	}
	if f.Parameter != "" {
		query += fmt.Sprintf(" AND parameter = $%d", n)
		args = append(args, f.Parameter)
		n++
	}
	if !f.From.IsZero() {
		query += fmt.Sprintf(" AND datetime_utc >= $%d", n)
		args = append(args, f.From)
		n++
	}
	if !f.To.IsZero() {
		query += fmt.Sprintf(" AND datetime_utc <= $%d", n)
		args = append(args, f.To)
		n++
	}

	query += " ORDER BY sensor_id, parameter, datetime_utc"

	rows, err := e.db.Query(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, err
	}

	count := 0
	for rows.Next() {
		var (
			sensorID             int
			parameter, local     string
			datetimeUTC          time.Time
			value                float64
			units                sql.NullString
			coverage, min        sql.NullFloat64
			max, median          sql.NullFloat64
		)
		err := rows.Scan(&sensorID, &parameter, &datetimeUTC, &local,
			&value, &units, &coverage, &min, &max, &median)
		if err != nil {
			return count, fmt.Errorf("failed to scan row: %w", err)
		}

		record := []string{
			strconv.Itoa(sensorID),
			parameter,
			datetimeUTC.UTC().Format(time.RFC3339),
			local,
			formatFloat(value),
			units.String,
			formatNullFloat(coverage),
			formatNullFloat(min),
			formatNullFloat(max),
			formatNullFloat(median),
		}
		if err := cw.Write(record); err != nil {
			return count, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("failed to read rows: %w", err)
	}

	cw.Flush()
	return count, cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNullFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Float64)
}
