package intelligence

import (
	"time"

	"github.com/alexanderramin/taper/internal/domain"
)

// fallbackThemeSuffix marks a week that was produced locally instead of by
// the generation API.
const fallbackThemeSuffix = " (standard plan)"

// recoveryScale reduces session length on deload weeks.
const recoveryScale = 0.7

type fallbackTemplate struct {
	name        string
	duration    int
	distance    *float64
	purpose     string
	description string
	structure   []domain.WorkoutSegment
	hrGuidance  string
	pace        string
	tips        []string
	adaptation  string
}

func km(v float64) *float64 { return &v }

var fallbackTemplates = map[domain.Discipline][]fallbackTemplate{
	domain.DisciplineRun: {
		{
			name:        "Easy Recovery Run",
			duration:    45,
			distance:    km(7),
			purpose:     "Active recovery to promote blood flow and aid muscle repair while maintaining aerobic fitness.",
			description: "EASY RECOVERY RUN\n\nDuration: 45min | Distance: ~7km\n\nThis recovery run promotes blood flow to tired muscles and maintains your aerobic base without adding stress. Keep it genuinely easy.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "5 min", Description: "Very easy jog to loosen up"},
				{Name: "Main run", Duration: "35 min", Description: "Steady Zone 1-2 effort"},
				{Name: "Cool-down", Duration: "5 min", Description: "Easy jog to walk"},
			},
			hrGuidance: "Stay in Zone 1-2. If breathing becomes labored, slow down.",
			pace:       "Conversation pace throughout. This should feel EASY.",
			tips: []string{
				"Slower is better today",
				"Focus on relaxed form and quick turnover",
				"If legs feel heavy, walking breaks are fine",
			},
			adaptation: "If feeling particularly fatigued, reduce to 30 minutes or substitute a walk.",
		},
		{
			name:        "Long Run - Aerobic Base",
			duration:    105,
			distance:    km(18),
			purpose:     "Build aerobic endurance and teach your body to burn fat efficiently during extended efforts.",
			description: "LONG RUN\n\nDuration: 1h 45min | Distance: ~18km\n\nBuilds aerobic endurance. Keep it conversational throughout.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "10 min", Description: "Start very easy, gradually building to easy pace"},
				{Name: "Main set", Duration: "1h 25min", Description: "Steady Zone 2 effort"},
				{Name: "Cool-down", Duration: "10 min", Description: "Gradually slow to a walk"},
			},
			hrGuidance: "Zone 2 throughout. If you drift above, slow down or walk.",
			pace:       "Easier than you think. You should be able to hold a conversation.",
			tips: []string{
				"Take water every 20min, consider a gel at 60min",
				"Flat to rolling terrain preferred",
				"Break it into thirds mentally",
			},
			adaptation: "If coming off a hard week, reduce by 15 minutes.",
		},
		{
			name:        "Tempo Run - Threshold Development",
			duration:    55,
			distance:    km(10),
			purpose:     "Train your body to clear lactate more efficiently and raise your threshold pace.",
			description: "TEMPO RUN\n\nDuration: 55min | Distance: ~10km\n\nComfortably hard intervals at threshold. Challenging but sustainable.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "15 min", Description: "Easy jog + 4 x 20sec strides"},
				{Name: "Main set", Duration: "3 x 10min", Description: "Tempo pace with 2min easy jog recovery"},
				{Name: "Cool-down", Duration: "10 min", Description: "Easy jog"},
			},
			hrGuidance: "Intervals in Zone 4. Let HR drop before the next interval.",
			pace:       "Near threshold pace on intervals, easy jog recoveries.",
			tips: []string{
				"Start each interval conservatively",
				"Relaxed shoulders, quick cadence",
				"The last interval should feel hard but repeatable",
			},
			adaptation: "If struggling, reduce to 2 x 10min. Better slightly slower than stopping.",
		},
	},
	domain.DisciplineBike: {
		{
			name:        "Easy Spin",
			duration:    60,
			distance:    km(25),
			purpose:     "Active recovery ride to flush the legs without adding training stress.",
			description: "EASY SPIN\n\nDuration: 60min | Distance: ~25km\n\nKeeps the legs moving without training stress. Perfect after a hard run day.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "10 min", Description: "Very easy spinning, high cadence"},
				{Name: "Main ride", Duration: "45 min", Description: "Steady Zone 1-2 effort"},
				{Name: "Cool-down", Duration: "5 min", Description: "Very easy spinning"},
			},
			hrGuidance: "Zone 1. If your legs burn, you are going too hard.",
			pace:       "High cadence (90-100 rpm), low resistance, flat terrain.",
			tips: []string{
				"Practice smooth pedaling technique",
				"Indoor trainer is fine for this session",
			},
			adaptation: "Can substitute an easy walk if particularly fatigued.",
		},
		{
			name:        "Long Endurance Ride",
			duration:    180,
			distance:    km(75),
			purpose:     "Build aerobic endurance for the bike leg and practice race nutrition.",
			description: "LONG ENDURANCE RIDE\n\nDuration: 3h | Distance: ~75km\n\nBuilds cycling endurance and is the place to rehearse race nutrition.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "15 min", Description: "Easy spinning, gradually building"},
				{Name: "Main set", Duration: "2h 30min", Description: "Steady Zone 2 effort"},
				{Name: "Cool-down", Duration: "15 min", Description: "Easy spinning"},
			},
			hrGuidance: "Zone 2. Avoid Zone 3 creep, stay patient.",
			pace:       "Consistent effort, not speed. Cadence 85-95 rpm.",
			tips: []string{
				"Aim for 60-80g carbs per hour",
				"Use this ride to test equipment and bike fit",
			},
			adaptation: "In bad weather, split into two rides or move to the trainer.",
		},
	},
	domain.DisciplineSwim: {
		{
			name:        "Technique & Endurance Swim",
			duration:    50,
			distance:    km(2),
			purpose:     "Build swimming endurance while maintaining good technique through focused drills.",
			description: "TECHNIQUE & ENDURANCE SWIM\n\nDuration: 50min | Distance: ~2,000m\n\nBuild endurance while holding good technique. Efficiency over speed.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "400m", Description: "200m easy freestyle + 4 x 50m drill/swim by 25m"},
				{Name: "Technique set", Duration: "600m", Description: "6 x 100m as 25m drill + 75m swim, 15sec rest"},
				{Name: "Endurance set", Duration: "800m", Description: "4 x 200m steady with 20sec rest"},
				{Name: "Cool-down", Duration: "200m", Description: "Easy backstroke or choice"},
			},
			hrGuidance: "Moderate effort on the endurance set, deliberate on drills.",
			pace:       "You should finish feeling like you could do more.",
			tips: []string{
				"Count strokes per length, aim for consistency",
				"Push off walls strong",
			},
			adaptation: "Reduce to 1,600m if short on time.",
		},
	},
	domain.DisciplineStrength: {
		{
			name:        "Core & Stability",
			duration:    30,
			purpose:     "Build core strength and stability to improve form and prevent injury.",
			description: "CORE & STABILITY SESSION\n\nDuration: 30min\n\nStrengthen your core for better form and injury prevention.",
			structure: []domain.WorkoutSegment{
				{Name: "Warm-up", Duration: "5 min", Description: "Dynamic stretches and activation"},
				{Name: "Circuit 1", Duration: "10 min", Description: "Plank variations, dead bugs, bird dogs"},
				{Name: "Circuit 2", Duration: "10 min", Description: "Single-leg exercises, glute bridges, clamshells"},
				{Name: "Cool-down", Duration: "5 min", Description: "Static stretching"},
			},
			hrGuidance: "Not about HR. Focus on quality movements.",
			pace:       "8-12 reps per exercise, 2-3 rounds of each circuit.",
			tips: []string{
				"Perfect form is essential",
				"Breathe, do not hold your breath",
			},
			adaptation: "Skip if you have a hard run the next day.",
		},
	},
	domain.DisciplineRest: {
		{
			name:        "Rest Day",
			duration:    0,
			purpose:     "Complete rest to allow your body to adapt and recover from training stress.",
			description: "REST DAY\n\nRest is when your body adapts and gets stronger. Sleep well, eat well, stay hydrated. Light stretching is fine; do not sneak in a workout.",
			tips: []string{
				"Rest is training",
				"Focus on sleep quality tonight",
			},
		},
	},
}

var fallbackThemes = [4]struct{ theme, focus string }{
	{"Base Building", "Aerobic foundation and easy volume"},
	{"Endurance Development", "Longer sessions, steady effort"},
	{"Threshold Building", "Quality tempo work"},
	{"Recovery Week", "Reduced volume, maintain intensity"},
}

// BuildFallbackWeek produces a deterministic, non-personalized training
// week used when generation fails. The week is tagged both in its theme
// and via the Fallback flag so it is never mistaken for generated content.
func BuildFallbackWeek(data domain.OnboardingData, weekNumber, totalWeeks int, weekStart time.Time) *domain.WeekPlan {
	pattern := []domain.Discipline{
		domain.DisciplineRun,
		domain.DisciplineStrength,
		domain.DisciplineRun,
		domain.DisciplineRun,
		domain.DisciplineRest,
		domain.DisciplineRun,
		domain.DisciplineRest,
	}
	if data.Goal.RaceType.IsTriathlon() {
		pattern = []domain.Discipline{
			domain.DisciplineRun,
			domain.DisciplineStrength,
			domain.DisciplineSwim,
			domain.DisciplineBike,
			domain.DisciplineRest,
			domain.DisciplineRun,
			domain.DisciplineSwim,
		}
	}

	isRecovery := domain.IsRecoveryWeek(weekNumber)
	dayTokens := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	nextIndex := map[domain.Discipline]int{}
	var workouts []domain.Workout
	for i, disc := range pattern {
		templates := fallbackTemplates[disc]
		tmpl := templates[nextIndex[disc]%len(templates)]
		nextIndex[disc]++

		duration := tmpl.duration
		if isRecovery && disc != domain.DisciplineRest {
			duration = int(float64(duration) * recoveryScale)
		}

		workouts = append(workouts, domain.Workout{
			ID:                newWorkoutID(weekNumber, dayTokens[i]),
			Date:              weekStart.AddDate(0, 0, i),
			Type:              disc,
			Name:              tmpl.name,
			DurationMin:       duration,
			DistanceKm:        tmpl.distance,
			Description:       tmpl.description,
			Purpose:           tmpl.purpose,
			Structure:         tmpl.structure,
			HeartRateGuidance: tmpl.hrGuidance,
			PaceGuidance:      tmpl.pace,
			CoachingTips:      tmpl.tips,
			AdaptationNotes:   tmpl.adaptation,
			Status:            domain.WorkoutPlanned,
		})
	}

	t := fallbackThemes[(weekNumber-1)%len(fallbackThemes)]
	week := &domain.WeekPlan{
		WeekNumber:     weekNumber,
		StartDate:      weekStart,
		EndDate:        weekStart.AddDate(0, 0, 6),
		Theme:          t.theme + fallbackThemeSuffix,
		Focus:          t.focus,
		Phase:          domain.PhaseFor(weekNumber, totalWeeks),
		IsRecoveryWeek: isRecovery,
		Fallback:       true,
		Workouts:       workouts,
	}
	week.TotalPlannedHours = roundHours(week.TotalMinutes())
	return week
}
