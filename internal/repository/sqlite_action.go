package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// SQLiteActionRepo implements ActionRepo using a SQLite database.
type SQLiteActionRepo struct {
	db *sql.DB
}

// NewSQLiteActionRepo creates a new SQLiteActionRepo.
func NewSQLiteActionRepo(db *sql.DB) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: db}
}

func (r *SQLiteActionRepo) Create(ctx context.Context, a *domain.ActionLog) error {
	query := `INSERT INTO action_logs (id, user_id, task_id, action, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.TaskID,
		string(a.Action),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting action log: %w", err)
	}
	return nil
}

// ListRecentByUser returns the user's most recent actions, newest first.
func (r *SQLiteActionRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.ActionLog, error) {
	query := `SELECT id, user_id, task_id, action, created_at
		FROM action_logs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing action logs: %w", err)
	}
	defer rows.Close()

	var actions []*domain.ActionLog
	for rows.Next() {
		var a domain.ActionLog
		var actionStr, createdAtStr string
		if err := rows.Scan(&a.ID, &a.UserID, &a.TaskID, &actionStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning action log row: %w", err)
		}
		a.Action = domain.ActionKind(actionStr)
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		actions = append(actions, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action logs: %w", err)
	}
	return actions, nil
}
