package repository

import (
	"context"

	"github.com/alexanderramin/taper/internal/domain"
)

// StateStore persists the two engine records: the TrainingPlan aggregate
// and the OnboardingData snapshot that seeds every prompt.
//
// Load methods return (nil, nil) when the record is absent or corrupt;
// a damaged blob means "no plan exists", never a crash.
type StateStore interface {
	LoadPlan(ctx context.Context) (*domain.TrainingPlan, error)
	SavePlan(ctx context.Context, plan *domain.TrainingPlan) error
	DeletePlan(ctx context.Context) error

	LoadOnboarding(ctx context.Context) (*domain.OnboardingData, error)
	SaveOnboarding(ctx context.Context, data *domain.OnboardingData) error
	DeleteOnboarding(ctx context.Context) error
}
