package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithEstimatedMin(m int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = &m
	}
}

func WithEnergyReq(e int) TaskOption {
	return func(t *domain.Task) {
		t.EnergyReq = &e
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

func WithDueAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueAt = &d
	}
}

func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Checkin options
type CheckinOption func(*domain.Checkin)

func WithEnergyLevel(e int) CheckinOption {
	return func(c *domain.Checkin) {
		c.EnergyLevel = e
	}
}

func WithMood(m string) CheckinOption {
	return func(c *domain.Checkin) {
		c.Mood = m
	}
}

func WithAvailableMin(m int) CheckinOption {
	return func(c *domain.Checkin) {
		c.AvailableMin = m
	}
}

func WithDay(day string) CheckinOption {
	return func(c *domain.Checkin) {
		c.Day = day
	}
}

func NewTestCheckin(userID string, opts ...CheckinOption) *domain.Checkin {
	now := time.Now().UTC()
	c := &domain.Checkin{
		ID:          uuid.New().String(),
		UserID:      userID,
		EnergyLevel: 5,
		Day:         now.Format("2006-01-02"),
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActionLog options
type ActionOption func(*domain.ActionLog)

func WithActionAt(t time.Time) ActionOption {
	return func(a *domain.ActionLog) {
		a.CreatedAt = t
	}
}

func NewTestAction(userID, taskID string, kind domain.ActionKind, opts ...ActionOption) *domain.ActionLog {
	a := &domain.ActionLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    taskID,
		Action:    kind,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
