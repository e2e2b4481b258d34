package intelligence

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/llm"
)

// rawWeek is the intermediate shape parsed from generator output. All
// fields are optional; mapping into the canonical WeekPlan fills defaults.
type rawWeek struct {
	WeekNumber int          `json:"weekNumber"`
	Theme      string       `json:"theme"`
	Focus      string       `json:"focus"`
	Phase      string       `json:"phase"`
	Workouts   []rawWorkout `json:"workouts"`

	// Legacy full-plan shape: a list of weeks instead of a single week.
	Weeks []rawWeek `json:"weeks"`
}

type rawWorkout struct {
	DayOfWeek         string              `json:"dayOfWeek"`
	Type              string              `json:"type"`
	Name              string              `json:"name"`
	Duration          float64             `json:"duration"`
	Distance          *float64            `json:"distance"`
	Description       string              `json:"description"`
	Purpose           string              `json:"purpose"`
	Structure         []rawWorkoutSegment `json:"structure"`
	HeartRateGuidance string              `json:"heartRateGuidance"`
	PaceGuidance      string              `json:"paceGuidance"`
	CoachingTips      []string            `json:"coachingTips"`
	AdaptationNotes   string              `json:"adaptationNotes"`
}

type rawWorkoutSegment struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

const defaultWorkoutMinutes = 45

var dayOffsets = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// ParseWeekResponse repairs and parses raw generator output into a
// WeekPlan. knownPhase is the phase already computed for the week; the
// generator's value wins only if it supplied one. weekStart must be the
// Monday the week begins on.
func ParseWeekResponse(raw string, weekNumber int, knownPhase domain.Phase, weekStart time.Time) (*domain.WeekPlan, error) {
	idx := strings.IndexByte(raw, '{')
	if idx < 0 {
		return nil, fmt.Errorf("%w: no JSON object in response", llm.ErrInvalidOutput)
	}

	repaired := llm.Repair(raw[idx:])

	var parsed rawWeek
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err)
	}

	rawWorkouts := parsed.Workouts
	if len(rawWorkouts) == 0 && len(parsed.Weeks) > 0 {
		rawWorkouts = legacyWeekWorkouts(parsed.Weeks, weekNumber, &parsed)
	}
	if len(rawWorkouts) == 0 {
		return nil, fmt.Errorf("%w: response contains no workouts", llm.ErrInvalidOutput)
	}

	workouts := make([]domain.Workout, 0, len(rawWorkouts))
	for _, rw := range rawWorkouts {
		workouts = append(workouts, mapWorkout(rw, weekNumber, weekStart))
	}

	totalMinutes := 0
	for i := range workouts {
		totalMinutes += workouts[i].DurationMin
	}

	phase := knownPhase
	if parsed.Phase != "" {
		phase = domain.Phase(parsed.Phase)
	}
	theme := parsed.Theme
	if theme == "" {
		theme = fmt.Sprintf("Week %d", weekNumber)
	}

	return &domain.WeekPlan{
		WeekNumber:        weekNumber,
		StartDate:         weekStart,
		EndDate:           weekStart.AddDate(0, 0, 6),
		Theme:             theme,
		Focus:             parsed.Focus,
		Phase:             phase,
		TotalPlannedHours: roundHours(totalMinutes),
		IsRecoveryWeek:    domain.IsRecoveryWeek(weekNumber),
		Workouts:          workouts,
	}, nil
}

// legacyWeekWorkouts picks the matching week out of a full-plan response,
// falling back to the first week. The chosen week's theme/focus/phase
// replace the (empty) top-level values.
func legacyWeekWorkouts(weeks []rawWeek, weekNumber int, top *rawWeek) []rawWorkout {
	chosen := &weeks[0]
	for i := range weeks {
		if weeks[i].WeekNumber == weekNumber {
			chosen = &weeks[i]
			break
		}
	}
	top.Theme = chosen.Theme
	top.Focus = chosen.Focus
	top.Phase = chosen.Phase
	return chosen.Workouts
}

func mapWorkout(rw rawWorkout, weekNumber int, weekStart time.Time) domain.Workout {
	day := strings.ToLower(strings.TrimSpace(rw.DayOfWeek))
	offset, ok := dayOffsets[day]
	if !ok {
		day, offset = "monday", 0
	}

	discipline := domain.Discipline(strings.ToLower(rw.Type))
	if !domain.ValidDisciplines[string(discipline)] {
		discipline = domain.DisciplineRun
	}

	name := rw.Name
	if name == "" {
		name = "Workout"
	}

	duration := int(math.Round(rw.Duration))
	if duration <= 0 {
		duration = defaultWorkoutMinutes
	}

	var structure []domain.WorkoutSegment
	for _, seg := range rw.Structure {
		structure = append(structure, domain.WorkoutSegment(seg))
	}

	tips := rw.CoachingTips
	if tips == nil {
		tips = []string{}
	}

	return domain.Workout{
		ID:                newWorkoutID(weekNumber, day),
		Date:              weekStart.AddDate(0, 0, offset),
		Type:              discipline,
		Name:              name,
		DurationMin:       duration,
		DistanceKm:        rw.Distance,
		Description:       strings.ReplaceAll(rw.Description, `\n`, "\n"),
		Purpose:           rw.Purpose,
		Structure:         structure,
		HeartRateGuidance: rw.HeartRateGuidance,
		PaceGuidance:      rw.PaceGuidance,
		CoachingTips:      tips,
		AdaptationNotes:   rw.AdaptationNotes,
		// Generated content never dictates completion state.
		Status: domain.WorkoutPlanned,
	}
}

// newWorkoutID synthesizes a unique workout identifier. The timestamp plus
// random suffix keeps ids unique across repeated generation attempts for
// the same week and day.
func newWorkoutID(weekNumber int, day string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("w%d-%s-%d-%s", weekNumber, day, time.Now().UnixMilli(), suffix)
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
