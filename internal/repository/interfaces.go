package repository

import (
	"context"
	"errors"

	"github.com/nataliatalam/raimon/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListOpenByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

type CheckinRepo interface {
	Create(ctx context.Context, c *domain.Checkin) error
	LatestForDay(ctx context.Context, userID, day string) (*domain.Checkin, error)
}

type ActiveDoRepo interface {
	Save(ctx context.Context, a *domain.ActiveDo) error
	LatestByUser(ctx context.Context, userID string) (*domain.ActiveDo, error)
}

type ActionRepo interface {
	Create(ctx context.Context, a *domain.ActionLog) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.ActionLog, error)
}

type EventRepo interface {
	Append(ctx context.Context, e *domain.EventLog) error
}

type UserStatsRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
	Upsert(ctx context.Context, s *domain.UserStats) error
}
