package auditlog

import (
	"context"
	"database/sql"
	"fmt"
)

// RunStats summarizes build_run activity over a window, computed with a
// single aggregate query rather than GORM's row-mapping path: the report is
// a handful of scalars, not BuildRun rows.
type RunStats struct {
	TotalRuns     int64
	FailedRuns    int64
	AvgDurationMs float64
}

// StatsReader runs raw aggregate queries against the audit database. It
// holds the *sql.DB underneath the GORM connection directly, the way the
// query-construction layer this package's raw-SQL queries are grounded on
// talks to its driver.
type StatsReader struct {
	db *sql.DB
}

// NewStatsReader wraps db for aggregate reporting queries.
func NewStatsReader(db *sql.DB) *StatsReader {
	return &StatsReader{db: db}
}

// Since computes RunStats over every build_run row recorded at or after
// sinceUnixSeconds (a Unix timestamp, to keep the query driver-agnostic
// across sqlite/postgres/mysql date handling).
func (r *StatsReader) Since(ctx context.Context, sinceUnixSeconds int64) (*RunStats, error) {
	query := `
		SELECT COUNT(*),
		       SUM(CASE WHEN succeeded = 0 THEN 1 ELSE 0 END),
		       COALESCE(AVG(duration_ms), 0)
		FROM build_run
		WHERE started_at >= ?
	`

	stats := &RunStats{}
	row := r.db.QueryRowContext(ctx, query, sinceUnixSeconds)
	if err := row.Scan(&stats.TotalRuns, &stats.FailedRuns, &stats.AvgDurationMs); err != nil {
		return nil, fmt.Errorf("failed to query build run stats: %w", err)
	}
	return stats, nil
}
