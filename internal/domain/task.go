package domain

import "time"

type Task struct {
	ID       string
	UserID   string
	Title    string
	Priority Priority
	Status   TaskStatus

	// Estimates. Nil means unknown; the selection core applies defaults.
	EstimatedMin *int
	EnergyReq    *int // 1-5

	Tags []string

	DueAt     *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
