package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/service"
)

// FormatPlanStatus renders the plan overview: race countdown, week position,
// workout progress and the archived weeks so far.
func FormatPlanStatus(plan *domain.TrainingPlan, progress *service.Progress, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(plan.RaceName) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		StylePurple.Render(strings.ToUpper(string(plan.RaceType))),
		Dim(plan.RaceDate.Format("Jan 2, 2006")),
		raceCountdown(plan.RaceDate, now)))

	if plan.Completed() {
		b.WriteString(StyleGreen.Render("Plan complete — race week is here. Good luck!") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s  Week %d of %d", StyleDim.Render("PLAN  "), plan.CurrentWeekNumber, plan.TotalWeeks))
		if plan.CurrentWeek != nil {
			b.WriteString("  " + PhaseBadge(plan.CurrentWeek.Phase))
		}
		b.WriteString("\n")
	}

	if progress != nil && progress.Total > 0 {
		pct := float64(progress.Completed) / float64(progress.Total)
		b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("DONE  "),
			RenderProgress(pct, 20),
			Dim(fmt.Sprintf("%d of %d workouts", progress.Completed, progress.Total))))
	}

	if len(plan.CompletedWeeks) > 0 {
		b.WriteString("\n" + Header("Completed weeks") + "\n")
		b.WriteString(completedWeeksTable(plan.CompletedWeeks))
	}

	return RenderBox("Training Plan", strings.TrimRight(b.String(), "\n"))
}

func completedWeeksTable(weeks []domain.CompletedWeek) string {
	headers := []string{"WEEK", "PHASE", "THEME", "HOURS", "RATE", "FEELING"}
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		theme := w.Theme
		if w.Fallback {
			theme += " *"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.WeekNumber),
			PhaseBadge(w.Phase),
			theme,
			fmt.Sprintf("%s / %s", FormatHours(w.Summary.CompletedHours), FormatHours(w.Summary.PlannedHours)),
			fmt.Sprintf("%d%%", w.Summary.CompletionRate),
			string(w.Summary.Feedback.OverallFeeling),
		})
	}
	return RenderTable(headers, rows)
}

func raceCountdown(raceDate, now time.Time) string {
	days := int(raceDate.Sub(now).Hours() / 24)
	switch {
	case days < 0:
		return Dim("Race day has passed")
	case days == 0:
		return StyleRed.Render("RACE DAY")
	case days <= 14:
		return StyleRed.Render(fmt.Sprintf("%d days to go", days))
	case days <= 42:
		return StyleYellow.Render(fmt.Sprintf("%d days to go", days))
	default:
		return StyleGreen.Render(fmt.Sprintf("%d days to go", days))
	}
}
