package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
)

type statsService struct {
	actions repository.ActionRepo
	stats   repository.UserStatsRepo
}

// NewStatsService creates the stats service.
func NewStatsService(actions repository.ActionRepo, stats repository.UserStatsRepo) StatsService {
	return &statsService{actions: actions, stats: stats}
}

// RecordAction logs the action and updates the user's stats row. A "done"
// action extends or resets the streak depending on the last completion day;
// completing twice on the same day counts toward totals but not the streak.
func (s *statsService) RecordAction(ctx context.Context, userID, taskID string, kind domain.ActionKind, now time.Time) (*domain.UserStats, error) {
	if !domain.ValidActionKinds[string(kind)] {
		return nil, fmt.Errorf("unknown action kind: %q", kind)
	}

	now = now.UTC()
	action := &domain.ActionLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    taskID,
		Action:    kind,
		CreatedAt: now,
	}
	if err := s.actions.Create(ctx, action); err != nil {
		return nil, err
	}

	stats, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	switch kind {
	case domain.ActionDone:
		stats.TotalCompleted++
		switch stats.LastCompletedDay {
		case today:
			// Streak already counts today.
		case yesterdayOf(now):
			stats.StreakDays++
		default:
			stats.StreakDays = 1
		}
		stats.LastCompletedDay = today
	case domain.ActionSkip:
		stats.TotalSkipped++
	case domain.ActionDefer:
		// Deferring is neutral.
	}

	stats.UpdatedAt = now
	if err := s.stats.Upsert(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsService) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	return s.loadOrInit(ctx, userID)
}

// CloseDay ends the user's day: a day with no completion breaks the streak.
func (s *statsService) CloseDay(ctx context.Context, userID string, now time.Time) (*domain.UserStats, error) {
	stats, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	if stats.LastCompletedDay != now.Format("2006-01-02") && stats.StreakDays > 0 {
		stats.StreakDays = 0
		stats.UpdatedAt = now
		if err := s.stats.Upsert(ctx, stats); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// loadOrInit returns the user's stats row, or a fresh zero row when none
// exists yet.
func (s *statsService) loadOrInit(ctx context.Context, userID string) (*domain.UserStats, error) {
	stats, err := s.stats.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.UserStats{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}

func yesterdayOf(now time.Time) string {
	return now.AddDate(0, 0, -1).Format("2006-01-02")
}
