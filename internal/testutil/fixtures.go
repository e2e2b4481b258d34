package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/llm"
)

// OnboardingOption mutates the default onboarding fixture.
type OnboardingOption func(*domain.OnboardingData)

// WithRaceType sets the goal race type.
func WithRaceType(rt domain.RaceType) OnboardingOption {
	return func(d *domain.OnboardingData) {
		d.Goal.RaceType = rt
	}
}

// WithRaceDate sets the goal race date.
func WithRaceDate(t time.Time) OnboardingOption {
	return func(d *domain.OnboardingData) {
		d.Goal.RaceDate = t
	}
}

// WithLTHR sets the lactate threshold heart rate.
func WithLTHR(lthr int) OnboardingOption {
	return func(d *domain.OnboardingData) {
		d.Fitness.LTHR = lthr
	}
}

// Onboarding returns a complete intermediate half-marathon athlete.
func Onboarding(opts ...OnboardingOption) domain.OnboardingData {
	allDay := domain.DayAvailability{
		Available:   true,
		TimeSlots:   []domain.TimeSlot{domain.SlotMorning, domain.SlotEvening},
		MaxDuration: "90min",
	}
	data := domain.OnboardingData{
		Profile: domain.AthleteProfile{FirstName: "Alex", Age: 34, WeightKg: 72, HeightCm: 180},
		Fitness: domain.FitnessAssessment{
			Level:         domain.FitnessIntermediate,
			LTHR:          172,
			MaxHR:         190,
			ThresholdPace: "4:45",
			SwimLevel:     domain.SwimComfortable,
		},
		Goal: domain.RaceGoal{
			RaceType: domain.RaceHalfMarathon,
			RaceName: "City Half",
			RaceDate: time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
			Priority: domain.PriorityPB,
			GoalTime: "1:35:00",
		},
		Availability: domain.WeeklyAvailability{
			Monday:    allDay,
			Tuesday:   allDay,
			Wednesday: domain.DayAvailability{Available: false},
			Thursday:  allDay,
			Friday:    domain.DayAvailability{Available: false},
			Saturday: domain.DayAvailability{
				Available:   true,
				TimeSlots:   []domain.TimeSlot{domain.SlotMorning},
				MaxDuration: "3h",
				LongSession: true,
			},
			Sunday: allDay,
		},
	}
	for _, opt := range opts {
		opt(&data)
	}
	return data
}

// FakeGenerationClient is a scripted GenerationClient for service tests.
// By default every call produces a small valid week; set Err to fail all
// calls, or FailOnCall to fail only the Nth call (counted from 1).
type FakeGenerationClient struct {
	Err        error
	FailOnCall int
	Truncated  bool

	Calls    int
	Prompts  []string
	Requests []llm.GenerateRequest
}

func (f *FakeGenerationClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.Calls++
	f.Prompts = append(f.Prompts, req.UserPrompt)
	f.Requests = append(f.Requests, req)

	if f.Err != nil && (f.FailOnCall == 0 || f.Calls == f.FailOnCall) {
		return nil, f.Err
	}
	return &llm.GenerateResponse{
		Text:      weekJSON(f.Calls),
		Truncated: f.Truncated,
	}, nil
}

// weekJSON builds a minimal valid week response. The call counter is baked
// into the theme so tests can tell generations apart.
func weekJSON(call int) string {
	week := map[string]any{
		"theme": fmt.Sprintf("Generated %d", call),
		"focus": "Aerobic development",
		"workouts": []map[string]any{
			{"dayOfWeek": "monday", "type": "run", "name": "Easy Run", "duration": 45, "distance": 7},
			{"dayOfWeek": "tuesday", "type": "strength", "name": "Core & Stability", "duration": 30},
			{"dayOfWeek": "thursday", "type": "run", "name": "Tempo Run", "duration": 55, "distance": 10},
			{"dayOfWeek": "friday", "type": "rest", "name": "Rest Day", "duration": 0},
			{"dayOfWeek": "saturday", "type": "run", "name": "Long Run", "duration": 105, "distance": 18},
		},
	}
	out, _ := json.Marshal(week)
	return string(out)
}
