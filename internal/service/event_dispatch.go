package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/coaching"
	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
)

type eventService struct {
	donext   DoNextService
	checkins CheckinService
	tasks    TaskService
	stats    StatsService
	events   repository.EventRepo
	coach    coaching.CoachService
	observer UseCaseObserver
}

// NewEventService wires the event-driven entry point around the other
// services. coach may be nil; day-end responses then carry no insight.
func NewEventService(
	donext DoNextService,
	checkins CheckinService,
	tasks TaskService,
	stats StatsService,
	events repository.EventRepo,
	coach coaching.CoachService,
	observers ...UseCaseObserver,
) EventService {
	return &eventService{
		donext:   donext,
		checkins: checkins,
		tasks:    tasks,
		stats:    stats,
		events:   events,
		coach:    coach,
		observer: useCaseObserverOrNoop(observers),
	}
}

// HandleEvent routes an event to its handler. Every event, recognized or
// not, resolves to exactly one response; handlers never panic the caller.
func (s *eventService) HandleEvent(ctx context.Context, ev contract.Event) *contract.EventResponse {
	now := ev.OccurredAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var resp *contract.EventResponse
	switch ev.Kind {
	case contract.EventAppOpen:
		resp = s.handleAppOpen(ctx, ev)
	case contract.EventCheckinSubmitted:
		resp = s.handleCheckinSubmitted(ctx, ev, now)
	case contract.EventDoNext:
		resp = s.handleDoNext(ctx, ev, now)
	case contract.EventDoAction:
		resp = s.handleDoAction(ctx, ev, now)
	case contract.EventDayEnd:
		resp = s.handleDayEnd(ctx, ev, now)
	default:
		return failure(fmt.Sprintf("unknown event kind: %q", ev.Kind))
	}

	// The do-next pipeline appends its own event; everything else is logged
	// here, best-effort.
	if ev.Kind != contract.EventDoNext {
		s.appendEvent(ctx, ev, now)
	}
	return resp
}

func (s *eventService) handleAppOpen(ctx context.Context, ev contract.Event) *contract.EventResponse {
	data := map[string]any{}
	if stats, err := s.stats.Get(ctx, ev.UserID); err == nil {
		data["streak_days"] = stats.StreakDays
		data["total_completed"] = stats.TotalCompleted
	}
	return success(data)
}

func (s *eventService) handleCheckinSubmitted(ctx context.Context, ev contract.Event, now time.Time) *contract.EventResponse {
	checkin := &domain.Checkin{
		UserID:       ev.UserID,
		EnergyLevel:  payloadInt(ev.Payload, "energy"),
		Mood:         payloadString(ev.Payload, "mood"),
		AvailableMin: payloadInt(ev.Payload, "available_min"),
		Day:          now.UTC().Format("2006-01-02"),
		CreatedAt:    now,
	}
	if err := s.checkins.Submit(ctx, checkin); err != nil {
		return failure(err.Error())
	}
	return success(map[string]any{"checkin_id": checkin.ID})
}

func (s *eventService) handleDoNext(ctx context.Context, ev contract.Event, now time.Time) *contract.EventResponse {
	req := contract.DoNextRequest{UserID: ev.UserID, Now: &now}
	if cons, ok := ev.Payload["constraints"].(map[string]any); ok {
		req.Constraints = cons
	}

	resp := s.donext.DoNext(ctx, req)
	if !resp.Success {
		return failure(resp.Error)
	}
	data := map[string]any{
		"task_id":      resp.Data.TaskID,
		"reason_codes": resp.Data.ReasonCodes,
		"alt_task_ids": resp.Data.AltTaskIDs,
		"mode":         resp.Data.Mode,
	}
	if resp.Data.Coaching != nil {
		data["coaching"] = resp.Data.Coaching
	}
	return success(data)
}

func (s *eventService) handleDoAction(ctx context.Context, ev contract.Event, now time.Time) *contract.EventResponse {
	taskID := payloadString(ev.Payload, "task_id")
	if taskID == "" {
		return failure("task_id is required")
	}
	kind := domain.ActionKind(payloadString(ev.Payload, "action"))

	stats, err := s.stats.RecordAction(ctx, ev.UserID, taskID, kind, now)
	if err != nil {
		return failure(err.Error())
	}
	if kind == domain.ActionDone {
		if err := s.tasks.MarkDone(ctx, taskID); err != nil {
			return failure(err.Error())
		}
	}
	return success(map[string]any{
		"streak_days":     stats.StreakDays,
		"total_completed": stats.TotalCompleted,
		"total_skipped":   stats.TotalSkipped,
	})
}

func (s *eventService) handleDayEnd(ctx context.Context, ev contract.Event, now time.Time) *contract.EventResponse {
	stats, err := s.stats.CloseDay(ctx, ev.UserID, now)
	if err != nil {
		return failure(err.Error())
	}
	data := map[string]any{"streak_days": stats.StreakDays}
	if s.coach != nil {
		data["insight"] = s.coach.InsightMessage(ctx, stats)
	}
	return success(data)
}

func (s *eventService) appendEvent(ctx context.Context, ev contract.Event, now time.Time) {
	payload := "{}"
	if len(ev.Payload) > 0 {
		if raw, err := json.Marshal(ev.Payload); err == nil {
			payload = string(raw)
		}
	}
	entry := &domain.EventLog{
		ID:        uuid.New().String(),
		UserID:    ev.UserID,
		Kind:      string(ev.Kind),
		Payload:   payload,
		CreatedAt: now,
	}
	if err := s.events.Append(ctx, entry); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{Name: "append_event", Success: false, Err: err})
	}
}

func success(data map[string]any) *contract.EventResponse {
	if data == nil {
		data = map[string]any{}
	}
	return &contract.EventResponse{Success: true, Data: data}
}

func failure(msg string) *contract.EventResponse {
	return &contract.EventResponse{Success: false, Error: msg, Data: map[string]any{}}
}

func payloadString(payload map[string]any, key string) string {
	if s, ok := payload[key].(string); ok {
		return s
	}
	return ""
}

// payloadInt reads a numeric payload field, tolerating the float64 that
// JSON decoding produces.
func payloadInt(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
