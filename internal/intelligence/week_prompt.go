package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taper/internal/domain"
)

// BuildWeekPrompt assembles the user prompt for generating one training
// week. History must be ordered oldest first; constraints is free text from
// the athlete about the upcoming week and may be empty.
func BuildWeekPrompt(data domain.OnboardingData, weekNumber, totalWeeks int, history []domain.CompletedWeek, constraints string) string {
	phase := domain.PhaseFor(weekNumber, totalWeeks)
	isRecovery := domain.IsRecoveryWeek(weekNumber)
	zones := domain.HRZones(data.Fitness.LTHR)
	weeksUntilRace := totalWeeks - weekNumber
	isTriathlon := data.Goal.RaceType.IsTriathlon()

	var lastFeedback *domain.WeekFeedback
	if len(history) > 0 {
		lastFeedback = &history[len(history)-1].Summary.Feedback
	}

	var b strings.Builder

	sport := "running"
	if isTriathlon {
		sport = "triathlon"
	}
	fmt.Fprintf(&b, "You are an expert %s coach creating a detailed weekly training plan.\n\n", sport)

	fmt.Fprintf(&b, "## ATHLETE PROFILE\n")
	fmt.Fprintf(&b, "- Name: %s\n", data.Profile.FirstName)
	fmt.Fprintf(&b, "- Age: %d, Weight: %.0fkg, Height: %.0fcm\n", data.Profile.Age, data.Profile.WeightKg, data.Profile.HeightCm)
	fmt.Fprintf(&b, "- Level: %s\n", data.Fitness.Level)
	fmt.Fprintf(&b, "- Max HR: %dbpm\n", data.Fitness.MaxHR)
	fmt.Fprintf(&b, "- LTHR: %dbpm\n", data.Fitness.LTHR)
	fmt.Fprintf(&b, "- Threshold Pace: %s/km\n", data.Fitness.ThresholdPace)
	if data.Fitness.FTP != nil {
		fmt.Fprintf(&b, "- FTP: %dW\n", *data.Fitness.FTP)
	}
	fmt.Fprintf(&b, "- Swim Level: %s\n", data.Fitness.SwimLevel)

	fmt.Fprintf(&b, "\n## HEART RATE ZONES (based on LTHR %d)\n", data.Fitness.LTHR)
	for i, z := range zones {
		fmt.Fprintf(&b, "- Zone %d %s: %d-%dbpm\n", i+1, z.Name, z.Min, z.Max)
	}

	fmt.Fprintf(&b, "\n## RACE GOAL\n")
	fmt.Fprintf(&b, "- Race: %s (%s)\n", data.Goal.RaceName, data.Goal.RaceType)
	fmt.Fprintf(&b, "- Date: %s\n", data.Goal.RaceDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Weeks until race: %d\n", weeksUntilRace)
	fmt.Fprintf(&b, "- Goal: %s\n", data.Goal.Priority)
	if data.Goal.GoalTime != "" {
		fmt.Fprintf(&b, "- Target time: %s\n", data.Goal.GoalTime)
	}

	if isTriathlon {
		writeTriathlonRules(&b, data.Fitness.SwimLevel)
	}

	fmt.Fprintf(&b, "\n## TRAINING CONTEXT\n")
	fmt.Fprintf(&b, "- Currently generating: WEEK %d of %d\n", weekNumber, totalWeeks)
	fmt.Fprintf(&b, "- Training phase: %s\n", phase)
	if isRecovery {
		fmt.Fprintf(&b, "- WARNING: THIS IS A RECOVERY/DELOAD WEEK - Reduce volume by 30-40%%, keep intensity low\n")
	}
	if lastFeedback != nil {
		if lastFeedback.OverallFeeling.Fatigued() {
			fmt.Fprintf(&b, "- WARNING: Athlete reported fatigue last week - consider reducing load\n")
		}
		if len(lastFeedback.PhysicalIssues) > 0 {
			fmt.Fprintf(&b, "- WARNING: Physical issues reported: %s - adapt accordingly\n", strings.Join(lastFeedback.PhysicalIssues, ", "))
		}
	}
	if constraints != "" {
		fmt.Fprintf(&b, "- WARNING: Athlete constraint: %q - adapt schedule accordingly\n", constraints)
	}

	fmt.Fprintf(&b, "\n## TRAINING HISTORY\n%s\n", CompressHistory(history))

	fmt.Fprintf(&b, "\n## WEEKLY AVAILABILITY\n")
	dayNames := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, day := range data.Availability.Days() {
		fmt.Fprintf(&b, "- %s: %s\n", dayNames[i], formatDayAvailability(day))
	}

	writeOutputContract(&b, weekNumber, phase, zones, isTriathlon, isRecovery)

	return b.String()
}

func writeTriathlonRules(b *strings.Builder, swimLevel domain.SwimLevel) {
	fmt.Fprintf(b, `
## CRITICAL: WORKOUT DISTRIBUTION FOR TRIATHLON
You MUST include ALL THREE disciplines (swim, bike, run) each week with EQUAL frequency:
- SWIM: 2 sessions per week (skill level affects intensity, NOT frequency)
- BIKE: 2 sessions per week
- RUN: 2 sessions per week
- Optional: 1 strength/mobility session

The athlete's swim level is %q. Adjust swim INTENSITY and COMPLEXITY to this level.
DO NOT reduce swim frequency because the athlete is a weaker swimmer.
Weaker disciplines need MORE practice, not less.
`, string(swimLevel))
}

func formatDayAvailability(day domain.DayAvailability) string {
	if !day.Available {
		return "REST DAY"
	}
	slots := make([]string, len(day.TimeSlots))
	for i, s := range day.TimeSlots {
		slots[i] = string(s)
	}
	out := fmt.Sprintf("Available (%s, max %s)", strings.Join(slots, ", "), day.MaxDuration)
	if day.LongSession {
		out += " - LONG SESSION DAY"
	}
	return out
}

func writeOutputContract(b *strings.Builder, weekNumber int, phase domain.Phase, zones [5]domain.HRZone, isTriathlon, isRecovery bool) {
	fmt.Fprintf(b, `
## INSTRUCTIONS
Generate a DETAILED training week. For each workout, provide comprehensive descriptions including:
1. Clear warm-up protocol with duration and intensity
2. Main set with SPECIFIC intervals, paces, HR zones, and recovery periods
3. Cool-down protocol
4. Why this workout matters for their goal

Use the athlete's ACTUAL HR zones and threshold pace in your descriptions.

Return ONLY valid JSON (no markdown, no explanation):
{
  "weekNumber": %d,
  "theme": "Week theme (e.g., 'Aerobic Base Building', 'Speed Development')",
  "focus": "Primary focus for the week",
  "phase": %q,
  "workouts": [
    {
      "dayOfWeek": "monday",
      "type": "run",
      "name": "Workout Name",
      "duration": 60,
      "distance": 10,
      "purpose": "Why this workout - connect to their race goal",
      "description": "WARM-UP: 15min easy running at Zone 1 (%d-%dbpm)...\n\nMAIN SET: ...\n\nCOOL-DOWN: ...",
      "coachingTips": ["tip1", "tip2", "tip3"]
    }
  ]
}

RULES:
- Generate 5-7 workouts based on availability (rest days where not available)
`, weekNumber, string(phase), zones[0].Min, zones[0].Max)

	if isTriathlon {
		fmt.Fprintf(b, "- MANDATORY: Include exactly 2 swim, 2 bike, and 2 run sessions. Adjust intensity based on skill, not frequency.\n")
	} else {
		fmt.Fprintf(b, "- Focus on running with supporting strength work\n")
	}

	fmt.Fprintf(b, `- type must be: "run", "bike", "swim", "strength", or "rest"
- distance in km (null for strength/rest)
- duration in minutes
- Use \n for line breaks in description
- Include SPECIFIC HR zones and paces in every description
- NO trailing commas
`)
	if isRecovery {
		fmt.Fprintf(b, "- This is a recovery week: shorter sessions, lower intensity\n")
	}
}
