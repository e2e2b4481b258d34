package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
)

// FormatWorkoutDetail renders a single workout as a detail card.
func FormatWorkoutDetail(w *domain.Workout) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(w.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n", DisciplineBadge(w.Type), HumanDate(w.Date), StatusPill(w.Status)))

	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("DURATION"), FormatMinutes(w.DurationMin)))
	if w.DistanceKm != nil {
		b.WriteString(fmt.Sprintf("   %s  %s", StyleDim.Render("DISTANCE"), FormatDistance(*w.DistanceKm)))
	}
	b.WriteString("\n")

	if w.Description != "" {
		b.WriteString("\n" + w.Description + "\n")
	}
	if w.Purpose != "" {
		b.WriteString("\n" + Header("Purpose") + "\n" + w.Purpose + "\n")
	}

	if len(w.Structure) > 0 {
		b.WriteString("\n" + Header("Structure") + "\n")
		for _, seg := range w.Structure {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(seg.Name), Dim(seg.Duration), seg.Description))
		}
	}

	if w.HeartRateGuidance != "" {
		b.WriteString("\n" + StyleDim.Render("HR    ") + "  " + w.HeartRateGuidance + "\n")
	}
	if w.PaceGuidance != "" {
		b.WriteString(StyleDim.Render("PACE  ") + "  " + w.PaceGuidance + "\n")
	}

	if len(w.CoachingTips) > 0 {
		b.WriteString("\n" + Header("Coaching tips") + "\n")
		for _, tip := range w.CoachingTips {
			b.WriteString("• " + tip + "\n")
		}
	}

	if w.Actual != nil {
		b.WriteString("\n" + Header("Logged") + "\n")
		b.WriteString(FormatMinutes(w.Actual.DurationMin))
		if w.Actual.DistanceKm > 0 {
			b.WriteString(fmt.Sprintf(", %s", FormatDistance(w.Actual.DistanceKm)))
		}
		if w.Actual.AvgHR > 0 {
			b.WriteString(fmt.Sprintf(", avg HR %d", w.Actual.AvgHR))
		}
		if w.Actual.Feeling > 0 {
			b.WriteString(fmt.Sprintf(", feeling %d/5", w.Actual.Feeling))
		}
		b.WriteString("\n")
		if w.Actual.Notes != "" {
			b.WriteString(Dim(w.Actual.Notes) + "\n")
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// FormatTodayWorkout renders the today view. A nil workout means a rest or
// unscheduled day.
func FormatTodayWorkout(w *domain.Workout) string {
	if w == nil {
		return Dim("Rest day — nothing scheduled. Recover well.") + "\n"
	}
	return FormatWorkoutDetail(w)
}
