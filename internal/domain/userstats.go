package domain

import "time"

// UserStats is the per-user gamification state.
type UserStats struct {
	UserID           string
	StreakDays       int
	TotalCompleted   int
	TotalSkipped     int
	LastCompletedDay string // YYYY-MM-DD, empty if never
	UpdatedAt        time.Time
}
