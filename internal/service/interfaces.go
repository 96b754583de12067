package service

import (
	"context"
	"time"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListOpen(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CheckinService interface {
	Submit(ctx context.Context, c *domain.Checkin) error
	LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.Checkin, error)
}

type StatsService interface {
	RecordAction(ctx context.Context, userID, taskID string, kind domain.ActionKind, now time.Time) (*domain.UserStats, error)
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
	CloseDay(ctx context.Context, userID string, now time.Time) (*domain.UserStats, error)
}

type DoNextService interface {
	DoNext(ctx context.Context, req contract.DoNextRequest) *contract.DoNextResponse
}

type EventService interface {
	HandleEvent(ctx context.Context, ev contract.Event) *contract.EventResponse
}
