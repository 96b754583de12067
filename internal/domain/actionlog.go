package domain

import "time"

// ActionLog records what the user did with a surfaced task.
type ActionLog struct {
	ID        string
	UserID    string
	TaskID    string
	Action    ActionKind
	CreatedAt time.Time
}
