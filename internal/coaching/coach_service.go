package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/llm"
)

// CoachService generates short coaching messages for selected tasks.
// Implementations must always return a structurally valid message; internal
// failures resolve to the deterministic fallbacks, never to an error.
type CoachService interface {
	// CoachingMessage builds the message shown alongside a selection.
	CoachingMessage(ctx context.Context, task *domain.Task, reasonCodes []string, mode string) *contract.CoachingMessage

	// MotivationMessage builds the message for a user flagged as stuck.
	MotivationMessage(ctx context.Context, stats *domain.UserStats, consecutiveSkips int) *contract.CoachingMessage

	// InsightMessage builds the day-end reflection from the closed-out stats.
	InsightMessage(ctx context.Context, stats *domain.UserStats) *contract.CoachingMessage
}

type coachService struct {
	client llm.Client
}

// NewCoachService creates a CoachService backed by an LLM client.
// A nil client yields a service that serves fallbacks only.
func NewCoachService(client llm.Client) CoachService {
	return &coachService{client: client}
}

// coachInput is the trace handed to the model for coaching.
type coachInput struct {
	Title        string   `json:"title"`
	Priority     string   `json:"priority"`
	EstimatedMin *int     `json:"estimated_min,omitempty"`
	ReasonCodes  []string `json:"reason_codes"`
	Mode         string   `json:"mode"`
}

func (s *coachService) CoachingMessage(ctx context.Context, task *domain.Task, reasonCodes []string, mode string) *contract.CoachingMessage {
	if s.client == nil || task == nil {
		return FallbackCoachingMessage()
	}

	input := coachInput{
		Title:        task.Title,
		Priority:     string(task.Priority),
		EstimatedMin: task.EstimatedMin,
		ReasonCodes:  reasonCodes,
		Mode:         mode,
	}
	inputJSON, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return FallbackCoachingMessage()
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCoach,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   "Here is the selected task:\n\n" + string(inputJSON),
	})
	if err != nil {
		return FallbackCoachingMessage()
	}

	msg, err := llm.ExtractJSON[contract.CoachingMessage](resp.Text, validateCoachingMessage)
	if err != nil {
		return FallbackCoachingMessage()
	}
	return &msg
}

type motivationInput struct {
	StreakDays       int `json:"streak_days"`
	TotalCompleted   int `json:"total_completed"`
	ConsecutiveSkips int `json:"consecutive_skips"`
}

func (s *coachService) MotivationMessage(ctx context.Context, stats *domain.UserStats, consecutiveSkips int) *contract.CoachingMessage {
	if s.client == nil {
		return FallbackMotivationMessage()
	}

	input := motivationInput{ConsecutiveSkips: consecutiveSkips}
	if stats != nil {
		input.StreakDays = stats.StreakDays
		input.TotalCompleted = stats.TotalCompleted
	}
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return FallbackMotivationMessage()
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskMotivation,
		SystemPrompt: motivationSystemPrompt,
		UserPrompt:   string(inputJSON),
	})
	if err != nil {
		return FallbackMotivationMessage()
	}

	msg, err := llm.ExtractJSON[contract.CoachingMessage](resp.Text, validateCoachingMessage)
	if err != nil {
		return FallbackMotivationMessage()
	}
	return &msg
}

type insightInput struct {
	StreakDays     int `json:"streak_days"`
	TotalCompleted int `json:"total_completed"`
	TotalSkipped   int `json:"total_skipped"`
}

func (s *coachService) InsightMessage(ctx context.Context, stats *domain.UserStats) *contract.CoachingMessage {
	if s.client == nil {
		return FallbackInsightMessage()
	}

	input := insightInput{}
	if stats != nil {
		input.StreakDays = stats.StreakDays
		input.TotalCompleted = stats.TotalCompleted
		input.TotalSkipped = stats.TotalSkipped
	}
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return FallbackInsightMessage()
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInsight,
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   string(inputJSON),
	})
	if err != nil {
		return FallbackInsightMessage()
	}

	msg, err := llm.ExtractJSON[contract.CoachingMessage](resp.Text, validateCoachingMessage)
	if err != nil {
		return FallbackInsightMessage()
	}
	return &msg
}

// validateCoachingMessage rejects structurally hollow model output.
func validateCoachingMessage(m contract.CoachingMessage) error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is empty")
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is empty")
	}
	if strings.TrimSpace(m.NextStep) == "" {
		return errors.New("next_step is empty")
	}
	return nil
}
