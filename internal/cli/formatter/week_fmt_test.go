package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/taper/internal/domain"
)

func sampleWeek() *domain.WeekPlan {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	dist := 18.0
	return &domain.WeekPlan{
		WeekNumber:        4,
		StartDate:         monday,
		EndDate:           monday.AddDate(0, 0, 6),
		Theme:             "Building the Engine",
		Focus:             "Aerobic development",
		Phase:             domain.PhaseBuild1,
		TotalPlannedHours: 6.5,
		Workouts: []domain.Workout{
			// Out of date order on purpose; rendering sorts.
			{ID: "w4-saturday-1-aaaaaa", Date: monday.AddDate(0, 0, 5), Type: domain.DisciplineRun,
				Name: "Long Run", DurationMin: 105, DistanceKm: &dist, Status: domain.WorkoutPlanned},
			{ID: "w4-monday-1-bbbbbb", Date: monday, Type: domain.DisciplineRun,
				Name: "Easy Run", DurationMin: 45, Status: domain.WorkoutCompleted},
			{ID: "w4-friday-1-cccccc", Date: monday.AddDate(0, 0, 4), Type: domain.DisciplineRest,
				Name: "Rest Day", Status: domain.WorkoutPlanned},
		},
	}
}

func TestFormatWeek(t *testing.T) {
	out := stripANSI(FormatWeek(sampleWeek()))

	assert.Contains(t, out, "Week 4 — Building the Engine")
	assert.Contains(t, out, "Build 1")
	assert.Contains(t, out, "Aerobic development")
	assert.Contains(t, out, "Long Run")
	assert.Contains(t, out, "18km")
	assert.Contains(t, out, "1h 45m")
	assert.Contains(t, out, "✔ Done")
	assert.Contains(t, out, "6.5h")
	assert.NotContains(t, out, "standard plan")

	// Date-sorted: Easy Run (Monday) renders before Long Run (Saturday).
	assert.Less(t, strings.Index(out, "Easy Run"), strings.Index(out, "Long Run"))
}

func TestFormatWeek_FallbackNotice(t *testing.T) {
	week := sampleWeek()
	week.Fallback = true
	out := stripANSI(FormatWeek(week))
	assert.Contains(t, out, "not personalized")
}

func TestFormatWeek_RecoveryNotice(t *testing.T) {
	week := sampleWeek()
	week.IsRecoveryWeek = true
	out := stripANSI(FormatWeek(week))
	assert.Contains(t, out, "Recovery week")
}

func TestFormatWorkoutList_Empty(t *testing.T) {
	out := FormatWorkoutList("Upcoming", nil)
	assert.Contains(t, out, "No workouts scheduled")
}

func TestFormatWorkoutDetail(t *testing.T) {
	dist := 10.0
	w := &domain.Workout{
		ID:          "w4-thursday-1-dddddd",
		Date:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:        domain.DisciplineRun,
		Name:        "Tempo Run",
		DurationMin: 55,
		DistanceKm:  &dist,
		Description: "15min warm-up, 3x8min at threshold, cool down.",
		Purpose:     "Raise lactate threshold.",
		Structure: []domain.WorkoutSegment{
			{Name: "Warm-up", Duration: "15min", Description: "Easy jog"},
		},
		HeartRateGuidance: "Zone 4: 150-160bpm",
		CoachingTips:      []string{"Hold an even effort on the reps."},
		Status:            domain.WorkoutCompleted,
		Actual: &domain.ActualData{
			DurationMin: 52, DistanceKm: 9.5, AvgHR: 156, Feeling: 4, Notes: "tough but controlled",
		},
	}

	out := stripANSI(FormatWorkoutDetail(w))
	assert.Contains(t, out, "Tempo Run")
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, "PURPOSE")
	assert.Contains(t, out, "Warm-up")
	assert.Contains(t, out, "Zone 4: 150-160bpm")
	assert.Contains(t, out, "Hold an even effort")
	assert.Contains(t, out, "avg HR 156")
	assert.Contains(t, out, "feeling 4/5")
	assert.Contains(t, out, "tough but controlled")
}

func TestFormatTodayWorkout_Nil(t *testing.T) {
	out := stripANSI(FormatTodayWorkout(nil))
	assert.Contains(t, out, "Rest day")
}
