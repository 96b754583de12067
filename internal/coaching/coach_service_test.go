package coaching

import (
	"context"
	"errors"
	"testing"

	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	text     string
	err      error
	lastTask llm.TaskType
}

func (f *fakeClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastTask = req.Task
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeClient) Available(ctx context.Context) bool { return f.err == nil }

func testTask() *domain.Task {
	return &domain.Task{ID: "t-1", Title: "Write report", Priority: domain.PriorityHigh}
}

func TestCoachingMessage_Success(t *testing.T) {
	svc := NewCoachService(&fakeClient{
		text: `{"title": "Report time", "message": "It fits your energy.", "next_step": "Open the doc."}`,
	})

	msg := svc.CoachingMessage(context.Background(), testTask(), []string{"constraints_fit"}, "balanced")
	require.NotNil(t, msg)
	assert.Equal(t, "Report time", msg.Title)
	assert.Equal(t, "Open the doc.", msg.NextStep)
}

func TestCoachingMessage_ClientError_Fallback(t *testing.T) {
	svc := NewCoachService(&fakeClient{err: errors.New("connection refused")})

	msg := svc.CoachingMessage(context.Background(), testTask(), nil, "quick")
	require.NotNil(t, msg)
	assert.Equal(t, FallbackCoachingMessage(), msg)
}

func TestCoachingMessage_MalformedOutput_Fallback(t *testing.T) {
	cases := []string{
		"I think you should just start!",                      // no JSON
		`{"title": "x"}`,                                      // missing fields
		`{"title": " ", "message": "m", "next_step": "n"}`,    // blank title
	}
	for _, raw := range cases {
		svc := NewCoachService(&fakeClient{text: raw})
		msg := svc.CoachingMessage(context.Background(), testTask(), nil, "focus")
		assert.Equal(t, FallbackCoachingMessage(), msg, raw)
	}
}

func TestCoachingMessage_NilClient_Fallback(t *testing.T) {
	svc := NewCoachService(nil)
	msg := svc.CoachingMessage(context.Background(), testTask(), nil, "quick")
	assert.Equal(t, FallbackCoachingMessage(), msg)
}

func TestMotivationMessage_Fallback(t *testing.T) {
	svc := NewCoachService(&fakeClient{err: errors.New("timeout")})

	msg := svc.MotivationMessage(context.Background(), &domain.UserStats{StreakDays: 4}, 3)
	require.NotNil(t, msg)
	assert.Equal(t, FallbackMotivationMessage(), msg)
}

func TestInsightMessage_Success(t *testing.T) {
	client := &fakeClient{
		text: `{"title": "Steady day", "message": "Streak held at 4 days.", "next_step": "Lay out tomorrow's first task."}`,
	}
	svc := NewCoachService(client)

	msg := svc.InsightMessage(context.Background(), &domain.UserStats{StreakDays: 4, TotalCompleted: 12})
	require.NotNil(t, msg)
	assert.Equal(t, "Steady day", msg.Title)
	assert.Equal(t, llm.TaskInsight, client.lastTask)
}

func TestInsightMessage_Fallback(t *testing.T) {
	svc := NewCoachService(&fakeClient{err: errors.New("timeout")})

	msg := svc.InsightMessage(context.Background(), &domain.UserStats{StreakDays: 2})
	assert.Equal(t, FallbackInsightMessage(), msg)
}

func TestInsightMessage_NilClient_Fallback(t *testing.T) {
	svc := NewCoachService(nil)
	assert.Equal(t, FallbackInsightMessage(), svc.InsightMessage(context.Background(), nil))
}

func TestMotivationMessage_Success(t *testing.T) {
	svc := NewCoachService(&fakeClient{
		text: "```json\n{\"title\": \"Tiny start\", \"message\": \"Skips are data.\", \"next_step\": \"Two minutes only.\"}\n```",
	})

	msg := svc.MotivationMessage(context.Background(), nil, 3)
	require.NotNil(t, msg)
	assert.Equal(t, "Tiny start", msg.Title)
}
