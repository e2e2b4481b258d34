package service

import (
	"math"
	"sort"

	"github.com/alexanderramin/taper/internal/domain"
)

const maxKeyWorkouts = 3

// BuildWeekSummary derives the archival statistics for a finished week.
// Completed hours prefer the athlete's recorded actual duration over the
// planned one; key workouts are the longest endurance sessions.
func BuildWeekSummary(week *domain.WeekPlan, feedback domain.WeekFeedback) domain.WeekSummary {
	var completedCount, nonRestCount int
	var completedMinutes int
	for i := range week.Workouts {
		w := &week.Workouts[i]
		if w.Type != domain.DisciplineRest {
			nonRestCount++
		}
		if w.Status == domain.WorkoutCompleted {
			completedCount++
			minutes := w.DurationMin
			if w.Actual != nil && w.Actual.DurationMin > 0 {
				minutes = w.Actual.DurationMin
			}
			completedMinutes += minutes
		}
	}

	rate := 0
	if nonRestCount > 0 {
		rate = int(math.Round(float64(completedCount) / float64(nonRestCount) * 100))
	}

	return domain.WeekSummary{
		WeekNumber:     week.WeekNumber,
		Phase:          week.Phase,
		Theme:          week.Theme,
		PlannedHours:   week.TotalPlannedHours,
		CompletedHours: math.Round(float64(completedMinutes)/60*10) / 10,
		CompletionRate: rate,
		KeyWorkouts:    keyWorkouts(week.Workouts),
		Feedback:       feedback,
	}
}

// keyWorkouts picks up to three of the longest non-strength, non-rest
// sessions, longest first.
func keyWorkouts(workouts []domain.Workout) []domain.KeyWorkout {
	var candidates []domain.Workout
	for _, w := range workouts {
		if w.Type == domain.DisciplineRest || w.Type == domain.DisciplineStrength {
			continue
		}
		candidates = append(candidates, w)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DurationMin > candidates[j].DurationMin
	})
	if len(candidates) > maxKeyWorkouts {
		candidates = candidates[:maxKeyWorkouts]
	}

	var key []domain.KeyWorkout
	for _, w := range candidates {
		k := domain.KeyWorkout{
			Name:      w.Name,
			Type:      w.Type,
			Completed: w.Status == domain.WorkoutCompleted,
		}
		if w.Actual != nil {
			k.Notes = w.Actual.Notes
		}
		key = append(key, k)
	}
	return key
}
