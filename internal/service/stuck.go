package service

import (
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
)

// stuckSkipThreshold is how many consecutive skips flag a user as stuck.
const stuckSkipThreshold = 3

// DetectStuck reports whether a user looks stuck: their most recent
// stuckSkipThreshold actions are all skips and nothing was completed today.
// actions must be ordered newest first.
func DetectStuck(actions []*domain.ActionLog, now time.Time) bool {
	if len(actions) < stuckSkipThreshold {
		return false
	}
	for _, a := range actions[:stuckSkipThreshold] {
		if a.Action != domain.ActionSkip {
			return false
		}
	}
	today := now.UTC().Format("2006-01-02")
	for _, a := range actions {
		if a.Action == domain.ActionDone && a.CreatedAt.UTC().Format("2006-01-02") == today {
			return false
		}
	}
	return true
}
