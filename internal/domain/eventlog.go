package domain

import "time"

// EventLog is an append-only record of orchestrator events.
// Writes are fire-and-forget; readers are debugging tools only.
type EventLog struct {
	ID        string
	UserID    string
	Kind      string
	Payload   string // JSON, opaque to the store
	CreatedAt time.Time
}
