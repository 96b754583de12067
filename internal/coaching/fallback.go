package coaching

import "github.com/nataliatalam/raimon/internal/contract"

// FallbackCoachingMessage is the deterministic triple returned whenever the
// LLM path fails. It is always structurally valid.
func FallbackCoachingMessage() *contract.CoachingMessage {
	return &contract.CoachingMessage{
		Title:    "Let's go",
		Message:  "You've got this.",
		NextStep: "Begin.",
	}
}

// FallbackInsightMessage is the deterministic day-end reflection.
func FallbackInsightMessage() *contract.CoachingMessage {
	return &contract.CoachingMessage{
		Title:    "Day closed",
		Message:  "Today is logged. Tomorrow starts fresh.",
		NextStep: "Pick tomorrow's first task before you stop.",
	}
}

// FallbackMotivationMessage is the deterministic stuck-user message.
func FallbackMotivationMessage() *contract.CoachingMessage {
	return &contract.CoachingMessage{
		Title:    "Small steps",
		Message:  "A few skips in a row is a signal, not a failure.",
		NextStep: "Do the two-minute version of the task.",
	}
}
