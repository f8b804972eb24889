package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"driver-route-service/internal/domain"
)

// SQLite-backed implementation of the StopRepository port.
type SqliteStopRepository struct{ DB *sql.DB }

func NewSqliteStopRepository(db *sql.DB) *SqliteStopRepository {
	return &SqliteStopRepository{DB: db}
}

// Return the driver's pending stops, excluding rows without coordinates and
// ordered by the externally maintained route position, then creation time.
// Express rows surface as high-priority stops; everything else is normal.
func (s *SqliteStopRepository) ListPendingStops(ctx context.Context, driverID string) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_id,
		name,
		address,
		lat,
		lng,
		is_express,
		time_window_start,
		time_window_end,
		estimated_duration_minutes,
		stop_type
	FROM stops
	WHERE driver_id = ?
		AND status = 'pending'
		AND lat IS NOT NULL
		AND lng IS NOT NULL
	ORDER BY route_position, created_at;
	`
	rows, err := s.DB.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list pending stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 16)
	for rows.Next() {
		var (
			stop      domain.Stop
			isExpress bool
			windowA   sql.NullString
			windowB   sql.NullString
			dwell     sql.NullFloat64
			stopType  string
		)
		err := rows.Scan(
			&stop.ID,
			&stop.Name,
			&stop.Address,
			&stop.Lat,
			&stop.Lng,
			&isExpress,
			&windowA,
			&windowB,
			&dwell,
			&stopType,
		)
		if err != nil {
			return nil, fmt.Errorf("list pending stops: scan row: %w", err)
		}

		stop.Priority = domain.PriorityNormal
		if isExpress {
			stop.Priority = domain.PriorityHigh
		}
		if windowA.Valid && windowB.Valid {
			stop.TimeWindow = &domain.TimeWindow{Start: windowA.String, End: windowB.String}
		}
		if dwell.Valid {
			d := dwell.Float64
			stop.EstimatedDuration = &d
		}
		stop.Type = domain.StopType(stopType)

		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending stops: row iteration: %w", err)
	}

	return stops, nil
}
