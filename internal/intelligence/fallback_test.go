package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taper/internal/domain"
)

func TestBuildFallbackWeek_Runner(t *testing.T) {
	week := BuildFallbackWeek(runnerOnboarding(), 1, 16, testMonday)

	assert.True(t, week.Fallback)
	assert.Contains(t, week.Theme, "(standard plan)")
	assert.Equal(t, domain.PhaseBase, week.Phase)
	assert.Equal(t, testMonday, week.StartDate)
	assert.Equal(t, testMonday.AddDate(0, 0, 6), week.EndDate)

	require.Len(t, week.Workouts, 7)
	for i, w := range week.Workouts {
		assert.Equal(t, testMonday.AddDate(0, 0, i), w.Date)
		assert.Equal(t, domain.WorkoutPlanned, w.Status)
		assert.NotEmpty(t, w.ID)
	}

	var disciplines []domain.Discipline
	for _, w := range week.Workouts {
		disciplines = append(disciplines, w.Type)
	}
	assert.NotContains(t, disciplines, domain.DisciplineSwim)
	assert.NotContains(t, disciplines, domain.DisciplineBike)
	assert.Contains(t, disciplines, domain.DisciplineStrength)
	assert.Contains(t, disciplines, domain.DisciplineRest)
}

func TestBuildFallbackWeek_Triathlete(t *testing.T) {
	week := BuildFallbackWeek(triathleteOnboarding(), 1, 16, testMonday)

	counts := map[domain.Discipline]int{}
	for _, w := range week.Workouts {
		counts[w.Type]++
	}
	assert.Equal(t, 2, counts[domain.DisciplineSwim])
	assert.Equal(t, 1, counts[domain.DisciplineBike])
	assert.Equal(t, 2, counts[domain.DisciplineRun])
}

func TestBuildFallbackWeek_RecoveryScaling(t *testing.T) {
	normal := BuildFallbackWeek(runnerOnboarding(), 3, 16, testMonday)
	recovery := BuildFallbackWeek(runnerOnboarding(), 4, 16, testMonday)

	assert.False(t, normal.IsRecoveryWeek)
	assert.True(t, recovery.IsRecoveryWeek)
	assert.Less(t, recovery.TotalPlannedHours, normal.TotalPlannedHours)
}

func TestBuildFallbackWeek_Deterministic(t *testing.T) {
	a := BuildFallbackWeek(runnerOnboarding(), 2, 16, testMonday)
	b := BuildFallbackWeek(runnerOnboarding(), 2, 16, testMonday)

	require.Len(t, b.Workouts, len(a.Workouts))
	for i := range a.Workouts {
		assert.Equal(t, a.Workouts[i].Name, b.Workouts[i].Name)
		assert.Equal(t, a.Workouts[i].DurationMin, b.Workouts[i].DurationMin)
	}
	assert.Equal(t, a.Theme, b.Theme)
}

func TestBuildFallbackWeek_ThemeCycle(t *testing.T) {
	assert.Contains(t, BuildFallbackWeek(runnerOnboarding(), 1, 16, testMonday).Theme, "Base Building")
	assert.Contains(t, BuildFallbackWeek(runnerOnboarding(), 4, 16, testMonday).Theme, "Recovery Week")
	assert.Contains(t, BuildFallbackWeek(runnerOnboarding(), 5, 16, testMonday).Theme, "Base Building")
}
