package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ilo_monitor/internal/models"
)

// StateSQLite keeps the monitor snapshot in a single server_state row.
type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

var _ StateRepo = (*StateSQLite)(nil)

const serverStateRowID = 1

const upsertStateSQL = `INSERT INTO server_state (id, host, power, uid, latency_ms, last_error, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	host = excluded.host, power = excluded.power, uid = excluded.uid,
	latency_ms = excluded.latency_ms, last_error = excluded.last_error,
	updated_at = excluded.updated_at`

const selectStateSQL = `SELECT id, host, power, uid, latency_ms, last_error, updated_at FROM server_state WHERE id = ?`

// Save replaces the snapshot. A zero UpdatedAt is stored as now; times are
// always written in UTC.
func (r *StateSQLite) Save(ctx context.Context, s models.ServerState) error {
	at := s.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	lastErr := sql.NullString{String: s.LastError, Valid: s.LastError != ""}

	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		serverStateRowID, s.Host, s.Power, s.UID, s.LatencyMs, lastErr, at.UTC())
	if err != nil {
		return fmt.Errorf("save state of %s: %w", s.Host, err)
	}
	return nil
}

// Load returns the snapshot, or a zero ServerState before the first Save.
func (r *StateSQLite) Load(ctx context.Context) (models.ServerState, error) {
	var (
		s       models.ServerState
		lastErr sql.NullString
	)
	row := r.db.QueryRowContext(ctx, selectStateSQL, serverStateRowID)
	switch err := row.Scan(&s.ID, &s.Host, &s.Power, &s.UID, &s.LatencyMs, &lastErr, &s.UpdatedAt); {
	case errors.Is(err, sql.ErrNoRows):
		return models.ServerState{}, nil
	case err != nil:
		return models.ServerState{}, fmt.Errorf("load server state: %w", err)
	}
	s.LastError = lastErr.String
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
