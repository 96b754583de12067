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

type checkinService struct {
	checkins repository.CheckinRepo
}

// NewCheckinService creates the check-in service.
func NewCheckinService(checkins repository.CheckinRepo) CheckinService {
	return &checkinService{checkins: checkins}
}

// Submit validates and stores a check-in. Energy must be on the 1-10 scale;
// missing id, day, and timestamp are filled in.
func (s *checkinService) Submit(ctx context.Context, c *domain.Checkin) error {
	if c == nil {
		return fmt.Errorf("checkin is nil")
	}
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("checkin user id is required")
	}
	if c.EnergyLevel < 1 || c.EnergyLevel > 10 {
		return fmt.Errorf("checkin energy must be between 1 and 10, got %d", c.EnergyLevel)
	}
	if c.AvailableMin < 0 {
		return fmt.Errorf("checkin available minutes must not be negative, got %d", c.AvailableMin)
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Day == "" {
		c.Day = c.CreatedAt.UTC().Format("2006-01-02")
	}

	return s.checkins.Create(ctx, c)
}

func (s *checkinService) LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.Checkin, error) {
	return s.checkins.LatestForDay(ctx, userID, day.UTC().Format("2006-01-02"))
}
