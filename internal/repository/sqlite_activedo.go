package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// SQLiteActiveDoRepo implements ActiveDoRepo using a SQLite database.
type SQLiteActiveDoRepo struct {
	db *sql.DB
}

// NewSQLiteActiveDoRepo creates a new SQLiteActiveDoRepo.
func NewSQLiteActiveDoRepo(db *sql.DB) *SQLiteActiveDoRepo {
	return &SQLiteActiveDoRepo{db: db}
}

func (r *SQLiteActiveDoRepo) Save(ctx context.Context, a *domain.ActiveDo) error {
	query := `INSERT INTO active_dos (id, user_id, task_id, reason_codes, mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.TaskID,
		joinList(a.ReasonCodes),
		string(a.Mode),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting active do: %w", err)
	}
	return nil
}

// LatestByUser returns the most recently surfaced selection for a user.
func (r *SQLiteActiveDoRepo) LatestByUser(ctx context.Context, userID string) (*domain.ActiveDo, error) {
	query := `SELECT id, user_id, task_id, reason_codes, mode, created_at
		FROM active_dos
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var a domain.ActiveDo
	var reasonsStr, modeStr, createdAtStr string
	err := row.Scan(&a.ID, &a.UserID, &a.TaskID, &reasonsStr, &modeStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("active do: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning active do: %w", err)
	}

	a.ReasonCodes = splitList(reasonsStr)
	a.Mode = domain.Mode(modeStr)
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
