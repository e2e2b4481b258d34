package service

import "errors"

var (
	// ErrNoPlan indicates no training plan has been initialized.
	ErrNoPlan = errors.New("no training plan exists")

	// ErrPlanExists indicates a plan is already active; reset first.
	ErrPlanExists = errors.New("a training plan already exists")

	// ErrPlanCompleted indicates all plan weeks have been trained through.
	ErrPlanCompleted = errors.New("training plan is complete")

	// ErrNoCurrentWeek indicates the plan has no active week, usually
	// because a previous generation attempt failed after archiving.
	ErrNoCurrentWeek = errors.New("no current training week")

	// ErrWorkoutNotFound indicates the workout id does not exist in the
	// current week.
	ErrWorkoutNotFound = errors.New("workout not found in current week")
)
