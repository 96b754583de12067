package contract

import "time"

type EventKind string

const (
	EventAppOpen          EventKind = "APP_OPEN"
	EventCheckinSubmitted EventKind = "CHECKIN_SUBMITTED"
	EventDoNext           EventKind = "DO_NEXT"
	EventDoAction         EventKind = "DO_ACTION"
	EventDayEnd           EventKind = "DAY_END"
)

// Event is the input to the event-driven orchestrator variant.
type Event struct {
	Kind       EventKind
	UserID     string
	Payload    map[string]any
	OccurredAt time.Time
}

// EventResponse mirrors DoNextResponse for event handling: every event,
// recognized or not, resolves to exactly one of these.
type EventResponse struct {
	Success bool
	Error   string
	Data    map[string]any
}
