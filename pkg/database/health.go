package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of the sql.DB connection pool.
type PoolStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	WaitDurationMS  int64 `json:"wait_duration_ms"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// HealthStatus reports connectivity plus pool statistics for the health
// endpoint.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTimeMS int64     `json:"response_time_ms"`
	Pool           PoolStats `json:"pool"`
}

// Health pings the database and snapshots its pool. On ping failure the
// returned status is "unhealthy" alongside the error.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			OpenConnections: s.OpenConnections,
			InUse:           s.InUse,
			Idle:            s.Idle,
			WaitCount:       s.WaitCount,
			WaitDurationMS:  s.WaitDuration.Milliseconds(),
			MaxOpenConns:    s.MaxOpenConnections,
		},
	}, nil
}
