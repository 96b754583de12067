package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// SQLiteUserStatsRepo implements UserStatsRepo using a SQLite database.
type SQLiteUserStatsRepo struct {
	db *sql.DB
}

// NewSQLiteUserStatsRepo creates a new SQLiteUserStatsRepo.
func NewSQLiteUserStatsRepo(db *sql.DB) *SQLiteUserStatsRepo {
	return &SQLiteUserStatsRepo{db: db}
}

func (r *SQLiteUserStatsRepo) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	query := `SELECT user_id, streak_days, total_completed, total_skipped, last_completed_day, updated_at
		FROM user_stats WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var s domain.UserStats
	var updatedAtStr string
	err := row.Scan(&s.UserID, &s.StreakDays, &s.TotalCompleted, &s.TotalSkipped, &s.LastCompletedDay, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user stats: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user stats: %w", err)
	}

	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

// Upsert writes the full stats row, inserting it if the user has none yet.
func (r *SQLiteUserStatsRepo) Upsert(ctx context.Context, s *domain.UserStats) error {
	query := `INSERT INTO user_stats (user_id, streak_days, total_completed, total_skipped, last_completed_day, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			streak_days = excluded.streak_days,
			total_completed = excluded.total_completed,
			total_skipped = excluded.total_skipped,
			last_completed_day = excluded.last_completed_day,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		s.StreakDays,
		s.TotalCompleted,
		s.TotalSkipped,
		s.LastCompletedDay,
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting user stats: %w", err)
	}
	return nil
}
