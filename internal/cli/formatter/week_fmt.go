package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
)

// FormatWeek renders the full current-week view inside a bordered box.
func FormatWeek(week *domain.WeekPlan) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %d — %s", week.WeekNumber, week.Theme)
	b.WriteString(StyleBold.Render(title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", PhaseBadge(week.Phase),
		Dim(fmt.Sprintf("%s – %s", week.StartDate.Format("Jan 2"), week.EndDate.Format("Jan 2")))))
	if week.Focus != "" {
		b.WriteString(Dim(week.Focus) + "\n")
	}
	if week.IsRecoveryWeek {
		b.WriteString(StyleGreen.Render("Recovery week — reduced load") + "\n")
	}
	if week.Fallback {
		b.WriteString(StyleYellow.Render("Standard plan week — generated locally, not personalized") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(workoutTable(week.Workouts))

	b.WriteString("\n" + Dim(fmt.Sprintf("Planned volume: %s", FormatHours(week.TotalPlannedHours))))

	return RenderBox("", b.String())
}

// FormatWorkoutList renders a date-ordered workout table without the
// surrounding week context, used for the upcoming view.
func FormatWorkoutList(title string, workouts []domain.Workout) string {
	if len(workouts) == 0 {
		return "No workouts scheduled.\n"
	}
	return RenderBox(title, workoutTable(workouts))
}

func workoutTable(workouts []domain.Workout) string {
	ordered := make([]domain.Workout, len(workouts))
	copy(ordered, workouts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	headers := []string{"DAY", "TYPE", "WORKOUT", "DURATION", "DIST", "STATUS", "ID"}
	rows := make([][]string, 0, len(ordered))
	for _, w := range ordered {
		dist := Dim("--")
		if w.DistanceKm != nil {
			dist = FormatDistance(*w.DistanceKm)
		}
		duration := FormatMinutes(w.DurationMin)
		if w.Type == domain.DisciplineRest {
			duration = Dim("--")
		}
		rows = append(rows, []string{
			HumanDate(w.Date),
			DisciplineBadge(w.Type),
			Bold(w.Name),
			duration,
			dist,
			StatusPill(w.Status),
			TruncID(w.ID),
		})
	}
	return RenderTable(headers, rows)
}
