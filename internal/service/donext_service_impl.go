package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/coaching"
	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
	"github.com/nataliatalam/raimon/internal/selection"
)

// defaultMaxMinutes is the time budget assumed when neither the request nor
// today's check-in carries one.
const defaultMaxMinutes = 60

// defaultCheckinEnergy is the assumed 1-10 energy when no check-in exists.
const defaultCheckinEnergy = 6

// recentActionWindow is how many recent actions the stuck detector sees.
const recentActionWindow = 10

type doNextService struct {
	tasks     repository.TaskRepo
	checkins  repository.CheckinRepo
	activeDos repository.ActiveDoRepo
	actions   repository.ActionRepo
	events    repository.EventRepo
	stats     repository.UserStatsRepo
	coach     coaching.CoachService
	observer  UseCaseObserver
}

// NewDoNextService wires the do-next orchestrator. coach may be nil-backed
// (fallback-only); repos must not be nil.
func NewDoNextService(
	tasks repository.TaskRepo,
	checkins repository.CheckinRepo,
	activeDos repository.ActiveDoRepo,
	actions repository.ActionRepo,
	events repository.EventRepo,
	stats repository.UserStatsRepo,
	coach coaching.CoachService,
	observers ...UseCaseObserver,
) DoNextService {
	return &doNextService{
		tasks:     tasks,
		checkins:  checkins,
		activeDos: activeDos,
		actions:   actions,
		events:    events,
		stats:     stats,
		coach:     coach,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// doNextRun carries the pipeline state between steps. A step that sets err
// short-circuits the remaining steps; finalize always runs.
type doNextRun struct {
	req        contract.DoNextRequest
	now        time.Time
	candidates []*domain.Task
	byID       map[string]*domain.Task
	cons       selection.Constraints
	mode       domain.Mode
	result     *contract.SelectionResult
	coaching   *contract.CoachingMessage
	err        error
}

func (s *doNextService) DoNext(ctx context.Context, req contract.DoNextRequest) *contract.DoNextResponse {
	started := time.Now()
	run := &doNextRun{req: req, now: time.Now().UTC()}
	if req.Now != nil {
		run.now = req.Now.UTC()
	}

	steps := []func(context.Context, *doNextRun){
		s.loadCandidates,
		s.deriveConstraints,
		s.selectTask,
		s.coachSelection,
	}
	for _, step := range steps {
		step(ctx, run)
		if run.err != nil {
			break
		}
	}

	resp := s.finalize(ctx, run)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "do_next",
		Duration:  time.Since(started),
		Success:   resp.Success,
		Err:       run.err,
		Fields:    map[string]any{"user_id": req.UserID, "task_id": resp.Data.TaskID},
		StartedAt: started,
	})
	return resp
}

func (s *doNextService) loadCandidates(ctx context.Context, run *doNextRun) {
	tasks, err := s.tasks.ListOpenByUser(ctx, run.req.UserID)
	if err != nil {
		run.err = err
		return
	}
	if len(tasks) == 0 {
		run.err = &contract.SelectionError{
			Code:    contract.ErrNoCandidates,
			Message: "No open tasks available",
		}
		return
	}
	run.candidates = tasks
	run.byID = make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		run.byID[t.ID] = t
	}
}

// deriveConstraints validates explicit request constraints strictly, but a
// missing constraint dict is not an error: it falls back to today's check-in,
// and a missing or unreadable check-in falls back to defaults.
func (s *doNextService) deriveConstraints(ctx context.Context, run *doNextRun) {
	if run.req.Constraints != nil {
		in := selection.ConstraintInputFromMap(run.req.Constraints)
		cons, err := selection.ValidateConstraints(in)
		if err != nil {
			run.err = err
			return
		}
		run.cons = cons
		run.mode = domain.Mode(cons.Mode)
		if run.mode == "" {
			run.mode = modeForEnergy(cons.CurrentEnergy * 2)
		}
		return
	}

	maxMinutes := defaultMaxMinutes
	energy10 := defaultCheckinEnergy

	day := run.now.Format("2006-01-02")
	checkin, err := s.checkins.LatestForDay(ctx, run.req.UserID, day)
	if err == nil {
		energy10 = checkin.EnergyLevel
		if checkin.AvailableMin > 0 {
			maxMinutes = checkin.AvailableMin
		}
	}
	// A storage failure here degrades to defaults rather than aborting the run.

	run.cons = selection.Constraints{
		MaxMinutes:    maxMinutes,
		CurrentEnergy: domain.ClampInt((energy10+1)/2, 1, 5),
		AvoidTags:     []string{},
	}
	run.mode = modeForEnergy(energy10)
	run.cons.Mode = string(run.mode)
}

func (s *doNextService) selectTask(ctx context.Context, run *doNextRun) {
	candidates := make([]selection.Candidate, len(run.candidates))
	for i, t := range run.candidates {
		candidates[i] = selection.RawTask{Task: t}
	}

	result, err := selection.Select(candidates, run.cons)
	if err != nil {
		run.err = err
		return
	}
	if _, ok := run.byID[result.TaskID]; !ok {
		run.err = &contract.SelectionError{
			Code:    contract.ErrDataIntegrity,
			Message: "selected task id not present in candidate set: " + result.TaskID,
		}
		return
	}
	run.result = result
}

// coachSelection attaches a coaching message. It consults the stuck detector
// and never fails: the coach contract guarantees a valid message.
func (s *doNextService) coachSelection(ctx context.Context, run *doNextRun) {
	if s.coach == nil {
		return
	}

	stuck := false
	skips := 0
	if actions, err := s.actions.ListRecentByUser(ctx, run.req.UserID, recentActionWindow); err == nil {
		stuck = DetectStuck(actions, run.now)
		for _, a := range actions {
			if a.Action != domain.ActionSkip {
				break
			}
			skips++
		}
	}

	if stuck {
		stats, err := s.stats.Get(ctx, run.req.UserID)
		if err != nil {
			stats = nil
		}
		run.coaching = s.coach.MotivationMessage(ctx, stats, skips)
		return
	}
	run.coaching = s.coach.CoachingMessage(ctx, run.byID[run.result.TaskID], run.result.ReasonCodes, string(run.mode))
}

// finalize is the single exit point: it always produces a response, persists
// the selection best-effort, and never raises.
func (s *doNextService) finalize(ctx context.Context, run *doNextRun) *contract.DoNextResponse {
	if run.err != nil {
		return &contract.DoNextResponse{Success: false, Error: run.err.Error()}
	}

	resp := &contract.DoNextResponse{
		Success: true,
		Data: contract.DoNextData{
			TaskID:      run.result.TaskID,
			ReasonCodes: run.result.ReasonCodes,
			AltTaskIDs:  run.result.AltTaskIDs,
			Mode:        string(run.mode),
			Coaching:    run.coaching,
		},
	}

	active := &domain.ActiveDo{
		ID:          uuid.New().String(),
		UserID:      run.req.UserID,
		TaskID:      run.result.TaskID,
		ReasonCodes: run.result.ReasonCodes,
		Mode:        run.mode,
		CreatedAt:   run.now,
	}
	if err := s.activeDos.Save(ctx, active); err != nil {
		s.warn(ctx, "save_active_do", err)
	}

	payload, _ := json.Marshal(map[string]any{
		"task_id":      run.result.TaskID,
		"reason_codes": run.result.ReasonCodes,
	})
	event := &domain.EventLog{
		ID:        uuid.New().String(),
		UserID:    run.req.UserID,
		Kind:      string(contract.EventDoNext),
		Payload:   string(payload),
		CreatedAt: run.now,
	}
	if err := s.events.Append(ctx, event); err != nil {
		s.warn(ctx, "append_event", err)
	}

	return resp
}

func (s *doNextService) warn(ctx context.Context, name string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{Name: name, Success: false, Err: err})
}

// modeForEnergy maps a 1-10 energy reading to a session mode.
func modeForEnergy(energy int) domain.Mode {
	switch {
	case energy <= 3:
		return domain.ModeQuick
	case energy <= 7:
		return domain.ModeBalanced
	default:
		return domain.ModeFocus
	}
}
