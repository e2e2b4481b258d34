package domain

type RaceType string

const (
	RaceMarathon         RaceType = "marathon"
	RaceHalfMarathon     RaceType = "half-marathon"
	RaceOlympicTriathlon RaceType = "olympic-triathlon"
	RaceSprintTriathlon  RaceType = "sprint-triathlon"
	RaceHalfIronman      RaceType = "70.3-ironman"
	RaceFullIronman      RaceType = "full-ironman"
	RaceCustom           RaceType = "custom"
)

// IsTriathlon reports whether the race involves all three disciplines.
func (r RaceType) IsTriathlon() bool {
	switch r {
	case RaceOlympicTriathlon, RaceSprintTriathlon, RaceHalfIronman, RaceFullIronman:
		return true
	default:
		return false
	}
}

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
	FitnessElite        FitnessLevel = "elite"
)

type SwimLevel string

const (
	SwimCantSwim    SwimLevel = "cant-swim"
	SwimLearning    SwimLevel = "learning"
	SwimComfortable SwimLevel = "comfortable"
	SwimCompetitive SwimLevel = "competitive"
)

type GoalPriority string

const (
	PriorityFinish GoalPriority = "finish"
	PriorityPB     GoalPriority = "pb"
	PriorityPodium GoalPriority = "podium"
)

type Discipline string

const (
	DisciplineSwim     Discipline = "swim"
	DisciplineBike     Discipline = "bike"
	DisciplineRun      Discipline = "run"
	DisciplineStrength Discipline = "strength"
	DisciplineRest     Discipline = "rest"
)

// ValidDisciplines is the canonical set of accepted discipline strings.
var ValidDisciplines = map[string]bool{
	"swim": true, "bike": true, "run": true, "strength": true, "rest": true,
}

type WorkoutStatus string

const (
	WorkoutPlanned   WorkoutStatus = "planned"
	WorkoutCompleted WorkoutStatus = "completed"
	WorkoutSkipped   WorkoutStatus = "skipped"
	WorkoutPartial   WorkoutStatus = "partial"
)

type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotMidday  TimeSlot = "midday"
	SlotEvening TimeSlot = "evening"
)

type WeekFeeling string

const (
	FeelingStruggling WeekFeeling = "struggling"
	FeelingTired      WeekFeeling = "tired"
	FeelingOkay       WeekFeeling = "okay"
	FeelingGood       WeekFeeling = "good"
	FeelingGreat      WeekFeeling = "great"
)

// Fatigued reports whether the feeling warrants a reduced load next week.
func (f WeekFeeling) Fatigued() bool {
	return f == FeelingStruggling || f == FeelingTired
}

type Phase string

const (
	PhaseBase     Phase = "Base"
	PhaseBuild1   Phase = "Build 1"
	PhaseBuild2   Phase = "Build 2"
	PhasePeak     Phase = "Peak"
	PhaseTaper    Phase = "Taper"
	PhaseRaceWeek Phase = "Race Week"
)
