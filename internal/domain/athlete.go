package domain

import "time"

// AthleteProfile holds identity and physical attributes collected during
// onboarding. Read-only input to the generation engine.
type AthleteProfile struct {
	FirstName string  `json:"firstName"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	WeightKg  float64 `json:"weight"`
	HeightCm  float64 `json:"height"`
}

// FitnessAssessment parameterizes zone calculation and prompt construction.
type FitnessAssessment struct {
	Level         FitnessLevel `json:"fitnessLevel"`
	LTHR          int          `json:"lthr"`
	ThresholdPace string       `json:"thresholdPace"` // min/km, e.g. "4:45"
	MaxHR         int          `json:"maxHR"`
	FTP           *int         `json:"ftp,omitempty"` // watts, cycling only
	SwimLevel     SwimLevel    `json:"swimLevel"`
}

// RaceGoal describes the target race. RaceDate is validated to be in the
// future by the onboarding layer before a plan is initialized.
type RaceGoal struct {
	RaceType RaceType     `json:"raceType"`
	RaceName string       `json:"raceName"`
	RaceDate time.Time    `json:"raceDate"`
	GoalTime string       `json:"goalTime,omitempty"`
	Priority GoalPriority `json:"priority"`
}

// DayAvailability describes one weekday's training window.
type DayAvailability struct {
	Available   bool       `json:"available"`
	TimeSlots   []TimeSlot `json:"timeSlots"`
	MaxDuration string     `json:"maxDuration"` // e.g. "60min", "2h"
	LongSession bool       `json:"longSession,omitempty"`
}

// WeeklyAvailability is the athlete's recurring weekly schedule.
type WeeklyAvailability struct {
	Monday            DayAvailability `json:"monday"`
	Tuesday           DayAvailability `json:"tuesday"`
	Wednesday         DayAvailability `json:"wednesday"`
	Thursday          DayAvailability `json:"thursday"`
	Friday            DayAvailability `json:"friday"`
	Saturday          DayAvailability `json:"saturday"`
	Sunday            DayAvailability `json:"sunday"`
	WeeklyHoursTarget string          `json:"weeklyHoursTarget"`
}

// Days returns the availability for each weekday in Monday-first order.
func (a WeeklyAvailability) Days() []DayAvailability {
	return []DayAvailability{
		a.Monday, a.Tuesday, a.Wednesday, a.Thursday,
		a.Friday, a.Saturday, a.Sunday,
	}
}

// Integrations records external tracker connection state. Connection flags
// only; no OAuth flow is implemented here.
type Integrations struct {
	GoogleCalendar struct {
		Connected      bool `json:"connected"`
		AvoidConflicts bool `json:"avoidConflicts"`
	} `json:"googleCalendar"`
	Strava struct {
		Connected    bool `json:"connected"`
		AutoComplete bool `json:"autoComplete"`
	} `json:"strava"`
}

// OnboardingData is the full athlete snapshot used to seed every prompt.
type OnboardingData struct {
	Profile      AthleteProfile     `json:"profile"`
	Fitness      FitnessAssessment  `json:"fitness"`
	Goal         RaceGoal           `json:"goal"`
	Availability WeeklyAvailability `json:"availability"`
	Integrations Integrations       `json:"integrations"`
}
