package domain

import "time"

// Checkin is a daily self-report. EnergyLevel is on the 1-10 scale the
// check-in UI uses; the selection core works on 1-5 and halves it.
type Checkin struct {
	ID           string
	UserID       string
	EnergyLevel  int
	Mood         string
	AvailableMin int
	Day          string // YYYY-MM-DD, local day of the check-in
	CreatedAt    time.Time
}
