package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

// NewTaskService creates the task service.
func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

// Create validates and stores a task, filling in id, defaults, and timestamps.
func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t == nil {
		return fmt.Errorf("task is nil")
	}
	if strings.TrimSpace(t.UserID) == "" {
		return fmt.Errorf("task user id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.TaskOpen
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListOpen(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListOpenByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.tasks.SetStatus(ctx, id, domain.TaskDone)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
