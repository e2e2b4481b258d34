package domain

import "time"

// WorkoutSegment is one named block inside a workout (warm-up, main set, ...).
type WorkoutSegment struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ActualData records what the athlete actually did for a workout.
type ActualData struct {
	DurationMin int     `json:"duration"`
	DistanceKm  float64 `json:"distance,omitempty"`
	AvgHR       int     `json:"avgHR,omitempty"`
	Feeling     int     `json:"feeling"` // 1 (awful) to 5 (great)
	Notes       string  `json:"notes,omitempty"`
}

// Workout is a single training session. Status and Actual are the only
// fields mutated after creation.
type Workout struct {
	ID                string           `json:"id"`
	Date              time.Time        `json:"date"`
	Type              Discipline       `json:"type"`
	Name              string           `json:"name"`
	DurationMin       int              `json:"duration"`
	DistanceKm        *float64         `json:"distance,omitempty"`
	Description       string           `json:"description"`
	Purpose           string           `json:"purpose"`
	Structure         []WorkoutSegment `json:"structure"`
	HeartRateGuidance string           `json:"heartRateGuidance"`
	PaceGuidance      string           `json:"paceGuidance"`
	CoachingTips      []string         `json:"coachingTips"`
	AdaptationNotes   string           `json:"adaptationNotes"`
	Status            WorkoutStatus    `json:"status"`
	Actual            *ActualData      `json:"actualData,omitempty"`
}

// WeekPlan is one generated training week. Workouts keep generation order,
// which is not necessarily date order.
type WeekPlan struct {
	WeekNumber        int       `json:"weekNumber"`
	StartDate         time.Time `json:"startDate"` // Monday
	EndDate           time.Time `json:"endDate"`   // Sunday
	Theme             string    `json:"theme"`
	Focus             string    `json:"focus"`
	Phase             Phase     `json:"phase"`
	TotalPlannedHours float64   `json:"totalPlannedHours"`
	IsRecoveryWeek    bool      `json:"isRecoveryWeek"`
	Fallback          bool      `json:"fallback,omitempty"` // locally generated, not personalized
	Workouts          []Workout `json:"workouts"`
}

// TotalMinutes sums planned workout durations.
func (w *WeekPlan) TotalMinutes() int {
	var total int
	for i := range w.Workouts {
		total += w.Workouts[i].DurationMin
	}
	return total
}

// KeyWorkout is a compact record of a notable session for history context.
type KeyWorkout struct {
	Name      string     `json:"name"`
	Type      Discipline `json:"type"`
	Completed bool       `json:"completed"`
	Notes     string     `json:"notes,omitempty"`
}

// WeekFeedback is the athlete's end-of-week review input.
type WeekFeedback struct {
	OverallFeeling      WeekFeeling `json:"overallFeeling"`
	PhysicalIssues      []string    `json:"physicalIssues"`
	Notes               string      `json:"notes"`
	NextWeekConstraints string      `json:"nextWeekConstraints,omitempty"`
}

// WeekSummary is computed once when a week is archived and never mutated.
type WeekSummary struct {
	WeekNumber     int          `json:"weekNumber"`
	Phase          Phase        `json:"phase"`
	Theme          string       `json:"theme"`
	PlannedHours   float64      `json:"plannedHours"`
	CompletedHours float64      `json:"completedHours"`
	CompletionRate int          `json:"completionRate"` // percent
	KeyWorkouts    []KeyWorkout `json:"keyWorkouts"`
	Feedback       WeekFeedback `json:"feedback"`
}

// CompletedWeek is the frozen archival record of a finished week.
type CompletedWeek struct {
	WeekNumber int         `json:"weekNumber"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Phase      Phase       `json:"phase"`
	Theme      string      `json:"theme"`
	Focus      string      `json:"focus"`
	Fallback   bool        `json:"fallback,omitempty"`
	Workouts   []Workout   `json:"workouts"`
	Summary    WeekSummary `json:"summary"`
}

// TrainingPlan is the aggregate root. While a current week exists,
// CurrentWeekNumber-1 == len(CompletedWeeks); CurrentWeek is nil iff
// CurrentWeekNumber > TotalWeeks or a generation attempt is pending retry.
type TrainingPlan struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	RaceName   string    `json:"raceName"`
	RaceDate   time.Time `json:"raceDate"`
	RaceType   RaceType  `json:"raceType"`
	TotalWeeks int       `json:"totalWeeks"`

	CurrentWeekNumber int       `json:"currentWeekNumber"`
	CurrentWeek       *WeekPlan `json:"currentWeek"`

	CompletedWeeks []CompletedWeek `json:"completedWeeks"`
}

// Completed reports whether all plan weeks have been trained through.
func (p *TrainingPlan) Completed() bool {
	return p.CurrentWeekNumber > p.TotalWeeks
}

// FindWorkout searches the current week first, then the archive.
// Archived workouts are read-only; callers must not mutate them.
func (p *TrainingPlan) FindWorkout(id string) (*Workout, bool) {
	if p.CurrentWeek != nil {
		for i := range p.CurrentWeek.Workouts {
			if p.CurrentWeek.Workouts[i].ID == id {
				return &p.CurrentWeek.Workouts[i], true
			}
		}
	}
	for w := range p.CompletedWeeks {
		for i := range p.CompletedWeeks[w].Workouts {
			if p.CompletedWeeks[w].Workouts[i].ID == id {
				return &p.CompletedWeeks[w].Workouts[i], true
			}
		}
	}
	return nil, false
}

// AllWorkouts returns every workout in the plan, archived weeks first,
// then the current week.
func (p *TrainingPlan) AllWorkouts() []Workout {
	var all []Workout
	for i := range p.CompletedWeeks {
		all = append(all, p.CompletedWeeks[i].Workouts...)
	}
	if p.CurrentWeek != nil {
		all = append(all, p.CurrentWeek.Workouts...)
	}
	return all
}
