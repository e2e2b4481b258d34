package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
)

// firstWeekSentinel is emitted when there is no history yet.
const firstWeekSentinel = "This is the athlete's first week of training. No prior history."

// recentWeeksDetailed is how many trailing weeks get a full per-week
// rendering. Everything older collapses into one aggregate block, which
// keeps the history section bounded no matter how long the plan runs.
const recentWeeksDetailed = 2

// recurringIssueThreshold is the number of older weeks an issue must
// appear in before it is called out as recurring.
const recurringIssueThreshold = 2

// CompressHistory renders completed weeks (oldest first) as a compact text
// block for the generation prompt.
func CompressHistory(weeks []domain.CompletedWeek) string {
	if len(weeks) == 0 {
		return firstWeekSentinel
	}

	cut := len(weeks) - recentWeeksDetailed
	if cut < 0 {
		cut = 0
	}
	older, recent := weeks[:cut], weeks[cut:]

	var parts []string
	parts = append(parts, "RECENT WEEKS (detailed):")
	for i := range recent {
		parts = append(parts, formatRecentWeek(&recent[i]))
	}

	if len(older) > 0 {
		parts = append(parts, "")
		parts = append(parts, formatOlderWeeks(older)...)
	}

	return strings.Join(parts, "\n")
}

func formatRecentWeek(w *domain.CompletedWeek) string {
	var sessions []string
	for _, k := range w.Summary.KeyWorkouts {
		mark := "✗"
		if k.Completed {
			mark = "✓"
		}
		s := fmt.Sprintf("%s %s", k.Name, mark)
		if k.Notes != "" {
			s += fmt.Sprintf(" (%s)", k.Notes)
		}
		sessions = append(sessions, s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Week %d (%s): %.1fh of %.1fh (%d%% completion). ",
		w.WeekNumber, w.Phase, w.Summary.CompletedHours, w.Summary.PlannedHours, w.Summary.CompletionRate)
	fmt.Fprintf(&b, "Key sessions: %s. ", strings.Join(sessions, ", "))
	fmt.Fprintf(&b, "Feeling: %s.", w.Summary.Feedback.OverallFeeling)
	if len(w.Summary.Feedback.PhysicalIssues) > 0 {
		fmt.Fprintf(&b, " Issues: %s.", strings.Join(w.Summary.Feedback.PhysicalIssues, ", "))
	}
	if w.Summary.Feedback.Notes != "" {
		fmt.Fprintf(&b, " Notes: %q", w.Summary.Feedback.Notes)
	}
	return b.String()
}

func formatOlderWeeks(older []domain.CompletedWeek) []string {
	var totalHours, totalCompletion float64
	for i := range older {
		totalHours += older[i].Summary.CompletedHours
		totalCompletion += float64(older[i].Summary.CompletionRate)
	}
	avgHours := totalHours / float64(len(older))
	avgCompletion := totalCompletion / float64(len(older))

	// Phase sequence with consecutive duplicates collapsed.
	var phases []string
	for i := range older {
		p := string(older[i].Phase)
		if len(phases) == 0 || phases[len(phases)-1] != p {
			phases = append(phases, p)
		}
	}

	parts := []string{
		fmt.Sprintf("TRAINING HISTORY (weeks 1-%d):", len(older)),
		fmt.Sprintf("- Total: %.1fh over %d weeks (avg %.1fh/week)", totalHours, len(older), avgHours),
		fmt.Sprintf("- Average completion: %.0f%%", avgCompletion),
		fmt.Sprintf("- Phases completed: %s", strings.Join(phases, " → ")),
	}

	if recurring := recurringIssues(older); len(recurring) > 0 {
		parts = append(parts, fmt.Sprintf("- Recurring issues to monitor: %s", strings.Join(recurring, ", ")))
	}
	return parts
}

// recurringIssues returns issue tags reported in at least
// recurringIssueThreshold distinct weeks, in first-seen order.
func recurringIssues(weeks []domain.CompletedWeek) []string {
	counts := make(map[string]int)
	var order []string
	for i := range weeks {
		seen := make(map[string]bool)
		for _, issue := range weeks[i].Summary.Feedback.PhysicalIssues {
			if seen[issue] {
				continue
			}
			seen[issue] = true
			if counts[issue] == 0 {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}
	var recurring []string
	for _, issue := range order {
		if counts[issue] >= recurringIssueThreshold {
			recurring = append(recurring, issue)
		}
	}
	return recurring
}
