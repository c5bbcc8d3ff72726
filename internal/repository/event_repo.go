package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ilo_monitor/internal/models"

	"github.com/google/uuid"
)

// EventSQLite stores audit events in the audit_events table.
type EventSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewEventSQLite(db *sql.DB) *EventSQLite {
	return &EventSQLite{db: db, now: time.Now}
}

var _ EventRepo = (*EventSQLite)(nil)

const (
	insertEventSQL  = `INSERT INTO audit_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`
	selectEventsSQL = `SELECT id, occurred_at, type, message, meta FROM audit_events`
	orderEventsSQL  = ` ORDER BY occurred_at ASC`
)

func normalizeType(typ string) string {
	return strings.ToUpper(strings.TrimSpace(typ))
}

// Append stores e. A missing id gets a fresh UUID and a zero time becomes now.
func (r *EventSQLite) Append(ctx context.Context, e models.AuditEvent) error {
	id := e.EventID
	if id == "" {
		id = uuid.NewString()
	}
	at := e.OccurredAt
	if at.IsZero() {
		at = r.now()
	}

	var meta sql.NullString
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata of %s event: %w", normalizeType(e.Type), err)
		}
		meta = sql.NullString{String: string(b), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, insertEventSQL,
		id, at.UTC().Format(timestampLayout), normalizeType(e.Type), e.Description, meta,
	); err != nil {
		return fmt.Errorf("insert %s event: %w", normalizeType(e.Type), err)
	}
	return nil
}

// eventQuery builds the WHERE clause for List.
type eventQuery struct {
	where []string
	args  []any
}

func (q *eventQuery) add(cond string, arg any) {
	q.where = append(q.where, cond)
	q.args = append(q.args, arg)
}

func (q *eventQuery) sql() string {
	s := selectEventsSQL
	if len(q.where) > 0 {
		s += " WHERE " + strings.Join(q.where, " AND ")
	}
	return s + orderEventsSQL
}

// List returns events with from <= occurred_at <= to and the given type,
// oldest first. Zero bounds and an empty type do not filter.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error) {
	var q eventQuery
	if !from.IsZero() {
		q.add("occurred_at >= ?", from.UTC().Format(timestampLayout))
	}
	if !to.IsZero() {
		q.add("occurred_at <= ?", to.UTC().Format(timestampLayout))
	}
	if t := normalizeType(typ); t != "" {
		q.add("type = ?", t)
	}

	rows, err := r.db.QueryContext(ctx, q.sql(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var out []models.AuditEvent
	for rows.Next() {
		var (
			ev   models.AuditEvent
			meta sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Description, &meta); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		ev.Metadata = decodeMeta(meta)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	if out == nil {
		out = []models.AuditEvent{}
	}
	return out, nil
}

// decodeMeta returns the stored JSON value, or the raw text when it does
// not parse.
func decodeMeta(meta sql.NullString) any {
	if !meta.Valid || meta.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(meta.String), &v); err != nil {
		return meta.String
	}
	return v
}
