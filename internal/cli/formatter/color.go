package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#8ec07c")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisciplineStyle returns the lipgloss style used for a workout discipline.
func DisciplineStyle(d domain.Discipline) lipgloss.Style {
	switch d {
	case domain.DisciplineSwim:
		return StyleBlue
	case domain.DisciplineBike:
		return StyleYellow
	case domain.DisciplineRun:
		return StyleGreen
	case domain.DisciplineStrength:
		return StylePurple
	default:
		return StyleDim
	}
}

// DisciplineBadge returns a colored uppercase discipline label.
func DisciplineBadge(d domain.Discipline) string {
	return DisciplineStyle(d).Render(strings.ToUpper(string(d)))
}

// StatusPill returns a colored status indicator for a workout.
func StatusPill(status domain.WorkoutStatus) string {
	switch status {
	case domain.WorkoutPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.WorkoutCompleted:
		return StyleGreen.Render("✔ Done")
	case domain.WorkoutPartial:
		return StyleYellow.Render("◐ Partial")
	case domain.WorkoutSkipped:
		return StyleDim.Render("⊘ Skipped")
	default:
		return StyleDim.Render(string(status))
	}
}

// PhaseBadge returns a colored training-phase label.
func PhaseBadge(phase domain.Phase) string {
	switch phase {
	case domain.PhaseBase:
		return StyleGreen.Render(string(phase))
	case domain.PhaseBuild1, domain.PhaseBuild2:
		return StyleYellow.Render(string(phase))
	case domain.PhasePeak:
		return StyleRed.Render(string(phase))
	case domain.PhaseTaper, domain.PhaseRaceWeek:
		return StylePurple.Render(string(phase))
	default:
		return StyleDim.Render(string(phase))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
