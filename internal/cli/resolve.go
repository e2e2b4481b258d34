package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
)

// resolveWorkoutID turns a user-supplied reference into a full workout ID.
// Accepted forms: the full ID, a unique ID prefix, or a weekday name which
// resolves to that day's first non-rest workout in the current week.
func resolveWorkoutID(ctx context.Context, app *App, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", fmt.Errorf("empty workout reference")
	}

	plan, err := app.Plans.CurrentPlan(ctx)
	if err != nil {
		return "", err
	}
	if plan.CurrentWeek == nil {
		return "", fmt.Errorf("no current week to resolve %q against", ref)
	}
	workouts := plan.CurrentWeek.Workouts

	if isWeekday(ref) {
		for i := range workouts {
			w := &workouts[i]
			if w.Type == domain.DisciplineRest {
				continue
			}
			if strings.EqualFold(w.Date.Weekday().String(), ref) {
				return w.ID, nil
			}
		}
		return "", fmt.Errorf("no workout scheduled on %s", ref)
	}

	var matches []string
	for i := range workouts {
		if workouts[i].ID == ref {
			return ref, nil
		}
		if strings.HasPrefix(workouts[i].ID, ref) {
			matches = append(matches, workouts[i].ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		// Let the service report not-found for full IDs outside the
		// current week (archived workouts are still viewable).
		return ref, nil
	default:
		return "", fmt.Errorf("ambiguous workout reference %q (%d matches)", ref, len(matches))
	}
}

func isWeekday(s string) bool {
	switch s {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}
