package repository

import (
	"context"
	"database/sql"
	"time"

	"ilo_monitor/internal/models"
)

// timestampLayout is how audit timestamps are written and compared. Filter
// bounds use the same layout so SQLite compares like with like.
const timestampLayout = "2006-01-02 15:04:05"

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo keeps the single latest monitor snapshot.
type StateRepo interface {
	Save(ctx context.Context, s models.ServerState) error
	Load(ctx context.Context) (models.ServerState, error)
}

// EventRepo is the append-only audit log.
type EventRepo interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
