package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/taper/internal/db"
	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/intelligence"
	"github.com/alexanderramin/taper/internal/llm"
	"github.com/alexanderramin/taper/internal/repository"
)

type planService struct {
	store    repository.StateStore
	uow      db.UnitOfWork
	gen      intelligence.WeekGenerator
	observer UseCaseObserver

	now      func() time.Time
	fallback bool

	// Serializes all plan operations. AdvanceWeek holds the lock across
	// the generation call so a status update can never race an archive.
	mu sync.Mutex
}

// PlanServiceOption customizes a PlanService.
type PlanServiceOption func(*planService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) PlanServiceOption {
	return func(s *planService) { s.now = now }
}

// WithoutFallback disables the local standard-week substitute; generation
// failures then leave the plan without a current week until retried.
func WithoutFallback() PlanServiceOption {
	return func(s *planService) { s.fallback = false }
}

// NewPlanService creates the plan lifecycle service.
func NewPlanService(store repository.StateStore, uow db.UnitOfWork, gen intelligence.WeekGenerator, observer UseCaseObserver, opts ...PlanServiceOption) PlanService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	s := &planService{
		store:    store,
		uow:      uow,
		gen:      gen,
		observer: observer,
		now:      time.Now,
		fallback: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) InitializePlan(ctx context.Context, data domain.OnboardingData) (outcome *GenerationOutcome, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "initialize_plan", s.now(), &err, &outcome)

	existing, err := s.store.LoadPlan(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPlanExists
	}

	now := s.now().UTC()
	totalWeeks := domain.TotalWeeksUntil(data.Goal.RaceDate, now)
	weekStart := domain.MondayOf(now)

	week, genErr := s.gen.GenerateWeek(ctx, intelligence.WeekRequest{
		Athlete:    data,
		WeekNumber: 1,
		TotalWeeks: totalWeeks,
		WeekStart:  weekStart,
	})
	fallbackUsed := false
	if genErr != nil {
		// Failure leaves no plan behind unless a local standard week can
		// stand in for the generated one.
		if !s.canFallback(ctx, genErr) {
			return nil, genErr
		}
		week = intelligence.BuildFallbackWeek(data, 1, totalWeeks, weekStart)
		fallbackUsed = true
	}

	plan := &domain.TrainingPlan{
		ID:                uuid.New().String(),
		CreatedAt:         now,
		RaceName:          data.Goal.RaceName,
		RaceDate:          data.Goal.RaceDate,
		RaceType:          data.Goal.RaceType,
		TotalWeeks:        totalWeeks,
		CurrentWeekNumber: 1,
		CurrentWeek:       week,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStore := repository.NewSQLiteStateRepo(tx)
		if err := txStore.SaveOnboarding(ctx, &data); err != nil {
			return err
		}
		return txStore.SavePlan(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	return &GenerationOutcome{Plan: plan, Fallback: fallbackUsed, GenerationErr: genErr}, nil
}

func (s *planService) AdvanceWeek(ctx context.Context, feedback domain.WeekFeedback, constraints string) (outcome *GenerationOutcome, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "advance_week", s.now(), &err, &outcome)

	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan.Completed() {
		return nil, ErrPlanCompleted
	}

	data, err := s.store.LoadOnboarding(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("onboarding snapshot missing: %w", ErrNoPlan)
	}

	// Archive the outgoing week. Skipped on a retry after a failed
	// generation attempt, where the archive already happened.
	if plan.CurrentWeek != nil {
		summary := BuildWeekSummary(plan.CurrentWeek, feedback)
		plan.CompletedWeeks = append(plan.CompletedWeeks, domain.CompletedWeek{
			WeekNumber: plan.CurrentWeek.WeekNumber,
			StartDate:  plan.CurrentWeek.StartDate,
			EndDate:    plan.CurrentWeek.EndDate,
			Phase:      plan.CurrentWeek.Phase,
			Theme:      plan.CurrentWeek.Theme,
			Focus:      plan.CurrentWeek.Focus,
			Fallback:   plan.CurrentWeek.Fallback,
			Workouts:   plan.CurrentWeek.Workouts,
			Summary:    summary,
		})
		plan.CurrentWeekNumber++
		plan.CurrentWeek = nil
	}

	if plan.CurrentWeekNumber > plan.TotalWeeks {
		// Final week archived; the plan is complete.
		if err := s.store.SavePlan(ctx, plan); err != nil {
			return nil, err
		}
		return &GenerationOutcome{Plan: plan}, nil
	}

	weekStart := domain.MondayOf(s.now().UTC())
	week, genErr := s.gen.GenerateWeek(ctx, intelligence.WeekRequest{
		Athlete:     *data,
		WeekNumber:  plan.CurrentWeekNumber,
		TotalWeeks:  plan.TotalWeeks,
		History:     plan.CompletedWeeks,
		Constraints: constraints,
		WeekStart:   weekStart,
	})

	switch {
	case genErr == nil:
		plan.CurrentWeek = week

	case errors.Is(genErr, context.Canceled):
		// Caller aborted: persist nothing, the stored plan still holds
		// the pre-call state.
		return nil, genErr

	case s.canFallback(ctx, genErr):
		plan.CurrentWeek = intelligence.BuildFallbackWeek(*data, plan.CurrentWeekNumber, plan.TotalWeeks, weekStart)

	default:
		// Keep the archived week; the next AdvanceWeek call retries the
		// generation step without re-archiving.
		if saveErr := s.store.SavePlan(ctx, plan); saveErr != nil {
			return nil, fmt.Errorf("persisting archive after failed generation: %v: %w", saveErr, genErr)
		}
		return nil, genErr
	}

	if err := s.store.SavePlan(ctx, plan); err != nil {
		return nil, err
	}
	return &GenerationOutcome{Plan: plan, Fallback: plan.CurrentWeek.Fallback, GenerationErr: genErr}, nil
}

// canFallback reports whether a failed generation may be replaced by a
// local standard week. Configuration errors and cancellations never are.
func (s *planService) canFallback(ctx context.Context, genErr error) bool {
	if !s.fallback {
		return false
	}
	if errors.Is(genErr, llm.ErrMissingAPIKey) {
		return false
	}
	if ctx.Err() != nil || errors.Is(genErr, context.Canceled) {
		return false
	}
	return true
}

func (s *planService) UpdateWorkoutStatus(ctx context.Context, workoutID string, status domain.WorkoutStatus, actual *domain.ActualData) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "update_workout_status", s.now(), &err, nil)

	plan, err := s.loadPlan(ctx)
	if err != nil {
		return err
	}
	if plan.CurrentWeek == nil {
		return ErrNoCurrentWeek
	}

	for i := range plan.CurrentWeek.Workouts {
		w := &plan.CurrentWeek.Workouts[i]
		if w.ID != workoutID {
			continue
		}
		w.Status = status
		w.Actual = actual
		return s.store.SavePlan(ctx, plan)
	}
	return fmt.Errorf("%w: %s", ErrWorkoutNotFound, workoutID)
}

func (s *planService) CurrentPlan(ctx context.Context) (*domain.TrainingPlan, error) {
	return s.loadPlan(ctx)
}

func (s *planService) WorkoutByID(ctx context.Context, id string) (*domain.Workout, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}
	w, ok := plan.FindWorkout(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return w, nil
}

// TodayWorkout returns the first non-rest workout scheduled for now's
// date, or nil when today is a rest day.
func (s *planService) TodayWorkout(ctx context.Context, now time.Time) (*domain.Workout, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range plan.AllWorkouts() {
		if sameDay(w.Date, now) && w.Type != domain.DisciplineRest {
			return &w, nil
		}
	}
	return nil, nil
}

func (s *planService) UpcomingWorkouts(ctx context.Context, now time.Time, limit int) ([]domain.Workout, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}

	today := startOfDay(now)
	var upcoming []domain.Workout
	for _, w := range plan.AllWorkouts() {
		if w.Type == domain.DisciplineRest {
			continue
		}
		if w.Date.After(today) {
			upcoming = append(upcoming, w)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

func (s *planService) WorkoutsForDate(ctx context.Context, date time.Time) ([]domain.Workout, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Workout
	for _, w := range plan.AllWorkouts() {
		if sameDay(w.Date, date) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *planService) PlanProgress(ctx context.Context) (*Progress, error) {
	plan, err := s.loadPlan(ctx)
	if err != nil {
		return nil, err
	}
	p := &Progress{}
	for _, w := range plan.AllWorkouts() {
		if w.Type == domain.DisciplineRest {
			continue
		}
		p.Total++
		if w.Status == domain.WorkoutCompleted {
			p.Completed++
		}
	}
	return p, nil
}

func (s *planService) Reset(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe(ctx, "reset_plan", s.now(), &err, nil)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStore := repository.NewSQLiteStateRepo(tx)
		if err := txStore.DeletePlan(ctx); err != nil {
			return err
		}
		return txStore.DeleteOnboarding(ctx)
	})
}

func (s *planService) loadPlan(ctx context.Context) (*domain.TrainingPlan, error) {
	plan, err := s.store.LoadPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoPlan
	}
	return plan, nil
}

func (s *planService) observe(ctx context.Context, name string, start time.Time, errp *error, outcome **GenerationOutcome) {
	event := UseCaseEvent{
		Name:      name,
		Duration:  s.now().Sub(start),
		Success:   *errp == nil,
		Err:       *errp,
		StartedAt: start,
	}
	if outcome != nil && *outcome != nil {
		event.Fields = map[string]any{
			"week":     (*outcome).Plan.CurrentWeekNumber,
			"fallback": (*outcome).Fallback,
		}
		if (*outcome).GenerationErr != nil {
			event.Fields["generation_error"] = (*outcome).GenerationErr.Error()
		}
	}
	s.observer.ObserveUseCase(ctx, event)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
