package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

const checkinColumns = `id, user_id, energy_level, mood, available_min, day, created_at`

// SQLiteCheckinRepo implements CheckinRepo using a SQLite database.
type SQLiteCheckinRepo struct {
	db *sql.DB
}

// NewSQLiteCheckinRepo creates a new SQLiteCheckinRepo.
func NewSQLiteCheckinRepo(db *sql.DB) *SQLiteCheckinRepo {
	return &SQLiteCheckinRepo{db: db}
}

func (r *SQLiteCheckinRepo) Create(ctx context.Context, c *domain.Checkin) error {
	query := `INSERT INTO checkins (id, user_id, energy_level, mood, available_min, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.EnergyLevel,
		c.Mood,
		c.AvailableMin,
		c.Day,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting checkin: %w", err)
	}
	return nil
}

// LatestForDay returns the most recent check-in for a user on the given day.
func (r *SQLiteCheckinRepo) LatestForDay(ctx context.Context, userID, day string) (*domain.Checkin, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkins
		WHERE user_id = ? AND day = ?
		ORDER BY created_at DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID, day)

	var c domain.Checkin
	var createdAtStr string
	err := row.Scan(&c.ID, &c.UserID, &c.EnergyLevel, &c.Mood, &c.AvailableMin, &c.Day, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checkin: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning checkin: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
