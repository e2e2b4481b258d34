package service

import (
	"context"
	"time"

	"github.com/alexanderramin/taper/internal/domain"
)

// GenerationOutcome is the result of an operation that requested a new
// training week. When generation fails but a local standard week was
// substituted, Plan is still usable and GenerationErr carries the cause so
// callers can disclose that the content is not personalized.
type GenerationOutcome struct {
	Plan          *domain.TrainingPlan
	Fallback      bool
	GenerationErr error
}

// Progress counts non-rest workouts across the whole plan.
type Progress struct {
	Completed int
	Total     int
}

// PlanService owns the training plan lifecycle. All mutating operations
// are serialized; a second caller blocks until the first resolves.
type PlanService interface {
	// InitializePlan creates the plan aggregate and generates week 1.
	// Fails if a plan already exists.
	InitializePlan(ctx context.Context, data domain.OnboardingData) (*GenerationOutcome, error)

	// AdvanceWeek archives the current week with the athlete's feedback
	// and generates the next one. Constraints is optional free text about
	// the upcoming week. When the plan's final week is archived the plan
	// transitions to completed and no generation happens.
	AdvanceWeek(ctx context.Context, feedback domain.WeekFeedback, constraints string) (*GenerationOutcome, error)

	// UpdateWorkoutStatus records completion state for a workout in the
	// current week. Archived weeks are immutable.
	UpdateWorkoutStatus(ctx context.Context, workoutID string, status domain.WorkoutStatus, actual *domain.ActualData) error

	CurrentPlan(ctx context.Context) (*domain.TrainingPlan, error)
	WorkoutByID(ctx context.Context, id string) (*domain.Workout, error)
	TodayWorkout(ctx context.Context, now time.Time) (*domain.Workout, error)
	UpcomingWorkouts(ctx context.Context, now time.Time, limit int) ([]domain.Workout, error)
	WorkoutsForDate(ctx context.Context, date time.Time) ([]domain.Workout, error)
	PlanProgress(ctx context.Context) (*Progress, error)

	// Reset deletes the plan and the onboarding snapshot.
	Reset(ctx context.Context) error
}
