package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects the placeholder style for seeding statements. The DDL in
// InitSchema is written to be valid under both engines.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id TEXT PRIMARY KEY,
		driver_id TEXT NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		lat REAL,
		lng REAL,
		is_express INTEGER NOT NULL DEFAULT 0,
		time_window_start TEXT,
		time_window_end TEXT,
		estimated_duration_minutes REAL,
		stop_type TEXT NOT NULL DEFAULT 'delivery',
		status TEXT NOT NULL DEFAULT 'pending',
		route_position INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lng REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_driver_status
    ON stops(driver_id, status);
	`

	statements := []string{
		createStopsQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	StopID           string   `json:"stop_id"`
	DriverID         string   `json:"driver_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	IsExpress        bool     `json:"is_express"`
	TimeWindowStart  *string  `json:"time_window_start"`
	TimeWindowEnd    *string  `json:"time_window_end"`
	EstimatedMinutes *float64 `json:"estimated_duration_minutes"`
	StopType         string   `json:"stop_type"`
	Status           string   `json:"status"`
	RoutePosition    int      `json:"route_position"`
	CreatedAt        string   `json:"created_at"`
}

// Populate the database with stop data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect Dialect) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.StopID) == "" {
			return fmt.Errorf("seed stops: empty stop_id at index %d", i+1)
		}
		if strings.TrimSpace(item.DriverID) == "" {
			return fmt.Errorf("seed stops: stop %q: driver_id cannot be empty", item.StopID)
		}
		if strings.TrimSpace(item.Address) == "" {
			return fmt.Errorf("seed stops: stop %q: address cannot be empty", item.StopID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO stops (
		stop_id,
		driver_id,
		name,
		address,
		lat,
		lng,
		is_express,
		time_window_start,
		time_window_end,
		estimated_duration_minutes,
		stop_type,
		status,
		route_position,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	if dialect == DialectPostgres {
		query = `
	INSERT INTO stops (
		stop_id,
		driver_id,
		name,
		address,
		lat,
		lng,
		is_express,
		time_window_start,
		time_window_end,
		estimated_duration_minutes,
		stop_type,
		status,
		route_position,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (stop_id) DO UPDATE
	SET driver_id = EXCLUDED.driver_id,
		status = EXCLUDED.status,
		route_position = EXCLUDED.route_position;
	`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		stopType := s.StopType
		if stopType == "" {
			stopType = "delivery"
		}
		status := s.Status
		if status == "" {
			status = "pending"
		}

		_, err := stmt.Exec(
			s.StopID,
			s.DriverID,
			s.Name,
			s.Address,
			s.Lat,
			s.Lng,
			s.IsExpress,
			s.TimeWindowStart,
			s.TimeWindowEnd,
			s.EstimatedMinutes,
			stopType,
			status,
			s.RoutePosition,
			s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed stops: insert stop_id=%q: %w", s.StopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
