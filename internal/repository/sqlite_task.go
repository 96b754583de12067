package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, title, priority, status,
		estimated_min, energy_req, tags, due_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, priority, status,
		estimated_min, energy_req, tags, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		string(t.Priority),
		string(t.Status),
		nullableIntToValue(t.EstimatedMin),
		nullableIntToValue(t.EnergyReq),
		joinList(t.Tags),
		nullableTimeToString(t.DueAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListOpenByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status = 'open'
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing open tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, priority = ?, status = ?,
		estimated_min = ?, energy_req = ?, tags = ?, due_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Priority),
		string(t.Status),
		nullableIntToValue(t.EstimatedMin),
		nullableIntToValue(t.EnergyReq),
		joinList(t.Tags),
		nullableTimeToString(t.DueAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var priorityStr, statusStr, tagsStr string
	var estimatedMin, energyReq sql.NullInt64
	var dueAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &priorityStr, &statusStr,
		&estimatedMin, &energyReq, &tagsStr, &dueAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, priorityStr, statusStr, tagsStr, estimatedMin, energyReq, dueAtStr, createdAtStr, updatedAtStr)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var priorityStr, statusStr, tagsStr string
		var estimatedMin, energyReq sql.NullInt64
		var dueAtStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &priorityStr, &statusStr,
			&estimatedMin, &energyReq, &tagsStr, &dueAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, priorityStr, statusStr, tagsStr, estimatedMin, energyReq, dueAtStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	priorityStr, statusStr, tagsStr string,
	estimatedMin, energyReq sql.NullInt64,
	dueAtStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Priority = domain.Priority(priorityStr)
	t.Status = domain.TaskStatus(statusStr)
	t.Tags = splitList(tagsStr)
	t.EstimatedMin = nullableIntFromSQL(estimatedMin)
	t.EnergyReq = nullableIntFromSQL(energyReq)
	t.DueAt = parseNullableTime(dueAtStr, time.RFC3339)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return t, nil
}
