package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func measurementColumns() []string {
	return []string{
		"sensor_id", "parameter", "datetime_utc", "datetime_local",
		"value", "units", "coverage_percent", "min_value", "max_value", "median_value",
	}
}

func TestWriteCSV(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	exporter := NewExporterWithDB(db)

	day1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(measurementColumns()).
		AddRow(1884, "pm25", day1, "2023-01-01T05:00:00+05:00", 42.5, "µg/m³", 100.0, 1.0, 90.0, 40.0).
		AddRow(1884, "pm25", day2, "2023-01-02T05:00:00+05:00", 39.0, "µg/m³", nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT sensor_id, parameter, datetime_utc`).
		WithArgs(1884, "pm25").
		WillReturnRows(rows)

	var buf bytes.Buffer
	count, err := exporter.WriteCSV(&buf, Filter{SensorID: 1884, Parameter: "pm25"})
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if count != 2 {
		t.Errorf("WriteCSV() count = %d, want 2", count)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "sensor_id,parameter,datetime_utc,datetime_local,value,units,coverage_percent,min_value,max_value,median_value" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "1884,pm25,2023-01-01T00:00:00Z,2023-01-01T05:00:00+05:00,42.5,µg/m³,100,1,90,40" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// NULL summary fields become empty cells
	if !strings.HasSuffix(lines[2], ",,,,") {
		t.Errorf("expected trailing empty cells for NULLs: %s", lines[2])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestWriteCSVTimeFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	exporter := NewExporterWithDB(db)

	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`datetime_utc >= \$1 AND datetime_utc <= \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(measurementColumns()))

	var buf bytes.Buffer
	count, err := exporter.WriteCSV(&buf, Filter{From: from, To: to})
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if count != 0 {
		t.Errorf("WriteCSV() count = %d, want 0", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
