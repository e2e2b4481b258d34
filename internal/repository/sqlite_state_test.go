package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/testutil"
)

func TestStateRepo_PlanRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	raceDate := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	plan := &domain.TrainingPlan{
		ID:                "plan-1",
		CreatedAt:         time.Date(2026, 2, 23, 10, 30, 0, 0, time.UTC),
		RaceName:          "City Half",
		RaceDate:          raceDate,
		RaceType:          domain.RaceHalfMarathon,
		TotalWeeks:        16,
		CurrentWeekNumber: 2,
		CurrentWeek: &domain.WeekPlan{
			WeekNumber: 2,
			StartDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			Theme:      "Endurance Development",
			Phase:      domain.PhaseBase,
			Workouts: []domain.Workout{
				{ID: "w2-monday-1-abc123", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Type: domain.DisciplineRun, Name: "Easy Run", DurationMin: 45, Status: domain.WorkoutPlanned},
			},
		},
		CompletedWeeks: []domain.CompletedWeek{
			{WeekNumber: 1, Phase: domain.PhaseBase, Summary: domain.WeekSummary{WeekNumber: 1, CompletionRate: 80}},
		},
	}

	require.NoError(t, repo.SavePlan(ctx, plan))

	loaded, err := repo.LoadPlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "plan-1", loaded.ID)
	assert.True(t, loaded.RaceDate.Equal(raceDate), "dates survive the round trip")
	require.NotNil(t, loaded.CurrentWeek)
	assert.Equal(t, "Easy Run", loaded.CurrentWeek.Workouts[0].Name)
	assert.True(t, loaded.CurrentWeek.Workouts[0].Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	require.Len(t, loaded.CompletedWeeks, 1)
	assert.Equal(t, 80, loaded.CompletedWeeks[0].Summary.CompletionRate)
}

func TestStateRepo_MissingPlanIsNil(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)

	plan, err := repo.LoadPlan(context.Background())
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestStateRepo_CorruptPlanReadsAsAbsent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	_, err := database.Exec(
		`INSERT INTO state_blobs (key, value, updated_at) VALUES ('training_plan', '{not json', 'now')`)
	require.NoError(t, err)

	plan, err := repo.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestStateRepo_SavePlanOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SavePlan(ctx, &domain.TrainingPlan{ID: "first"}))
	require.NoError(t, repo.SavePlan(ctx, &domain.TrainingPlan{ID: "second"}))

	loaded, err := repo.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.ID)
}

func TestStateRepo_DeletePlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SavePlan(ctx, &domain.TrainingPlan{ID: "p"}))
	require.NoError(t, repo.DeletePlan(ctx))

	plan, err := repo.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestStateRepo_OnboardingRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	ftp := 245
	data := &domain.OnboardingData{
		Profile: domain.AthleteProfile{FirstName: "Alex", Age: 34},
		Fitness: domain.FitnessAssessment{Level: domain.FitnessIntermediate, LTHR: 172, FTP: &ftp},
		Goal: domain.RaceGoal{
			RaceType: domain.RaceOlympicTriathlon,
			RaceName: "Lake Olympic",
			RaceDate: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.SaveOnboarding(ctx, data))

	loaded, err := repo.LoadOnboarding(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Alex", loaded.Profile.FirstName)
	require.NotNil(t, loaded.Fitness.FTP)
	assert.Equal(t, 245, *loaded.Fitness.FTP)
	assert.True(t, loaded.Goal.RaceDate.Equal(data.Goal.RaceDate))
}

func TestStateRepo_RecordsAreIndependent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SavePlan(ctx, &domain.TrainingPlan{ID: "p"}))
	require.NoError(t, repo.SaveOnboarding(ctx, &domain.OnboardingData{}))
	require.NoError(t, repo.DeletePlan(ctx))

	onboarding, err := repo.LoadOnboarding(ctx)
	require.NoError(t, err)
	assert.NotNil(t, onboarding, "deleting the plan leaves the onboarding snapshot")
}
