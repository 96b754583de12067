package domain

import "time"

// ActiveDo is the currently surfaced "next thing to do" for a user,
// persisted best-effort after each selection.
type ActiveDo struct {
	ID          string
	UserID      string
	TaskID      string
	ReasonCodes []string
	Mode        Mode
	CreatedAt   time.Time
}
