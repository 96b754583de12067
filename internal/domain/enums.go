package domain

type TaskStatus string

const (
	TaskOpen     TaskStatus = "open"
	TaskDone     TaskStatus = "done"
	TaskSkipped  TaskStatus = "skipped"
	TaskArchived TaskStatus = "archived"
)

// Priority is free-form on input; these are the values the coaching layer
// and the preference matching recognize.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Mode is an advisory session label. It never influences scoring.
type Mode string

const (
	ModeQuick    Mode = "quick"
	ModeBalanced Mode = "balanced"
	ModeFocus    Mode = "focus"
)

type ActionKind string

const (
	ActionDone  ActionKind = "done"
	ActionSkip  ActionKind = "skip"
	ActionDefer ActionKind = "defer"
)

// ValidActionKinds is the canonical set of accepted action strings.
var ValidActionKinds = map[string]bool{
	"done": true, "skip": true, "defer": true,
}
