package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Append(ctx context.Context, e *domain.EventLog) error {
	payload := e.Payload
	if payload == "" {
		payload = "{}"
	}
	query := `INSERT INTO event_logs (id, user_id, kind, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Kind,
		payload,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending event log: %w", err)
	}
	return nil
}
