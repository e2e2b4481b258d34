package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/llm"
)

type stubClient struct {
	lastReq llm.GenerateRequest
	resp    *llm.GenerateResponse
	err     error
}

func (s *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func TestWeekGenerator_GenerateWeek(t *testing.T) {
	client := &stubClient{
		resp: &llm.GenerateResponse{
			Text: `{"theme": "Base Building", "workouts": [{"dayOfWeek": "monday", "type": "run", "name": "Easy Run", "duration": 45}]}`,
		},
	}
	gen := NewWeekGenerator(client)

	week, err := gen.GenerateWeek(context.Background(), WeekRequest{
		Athlete:    runnerOnboarding(),
		WeekNumber: 1,
		TotalWeeks: 16,
		WeekStart:  testMonday,
	})

	require.NoError(t, err)
	assert.Equal(t, "Base Building", week.Theme)
	assert.Equal(t, domain.PhaseBase, week.Phase)
	assert.False(t, week.Fallback)

	assert.NotEmpty(t, client.lastReq.SystemPrompt)
	assert.Contains(t, client.lastReq.UserPrompt, "WEEK 1 of 16")
}

func TestWeekGenerator_ConstraintsReachPrompt(t *testing.T) {
	client := &stubClient{
		resp: &llm.GenerateResponse{Text: `{"workouts": [{"dayOfWeek": "monday"}]}`},
	}
	gen := NewWeekGenerator(client)

	_, err := gen.GenerateWeek(context.Background(), WeekRequest{
		Athlete:     runnerOnboarding(),
		WeekNumber:  2,
		TotalWeeks:  16,
		Constraints: "no pool access this week",
		WeekStart:   testMonday,
	})

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "no pool access this week")
}

func TestWeekGenerator_TruncatedResponseStillParses(t *testing.T) {
	client := &stubClient{
		resp: &llm.GenerateResponse{
			Text:       `{"workouts": [{"dayOfWeek": "monday", "name": "Easy Run"}, {"dayOfWeek": "tuesday", "name": "Temp`,
			StopReason: llm.StopReasonMaxTokens,
			Truncated:  true,
		},
	}
	gen := NewWeekGenerator(client)

	week, err := gen.GenerateWeek(context.Background(), WeekRequest{
		Athlete:    runnerOnboarding(),
		WeekNumber: 1,
		TotalWeeks: 16,
		WeekStart:  testMonday,
	})

	require.NoError(t, err)
	assert.Len(t, week.Workouts, 2)
}

func TestWeekGenerator_ClientErrorPropagates(t *testing.T) {
	client := &stubClient{err: llm.ErrUnavailable}
	gen := NewWeekGenerator(client)

	_, err := gen.GenerateWeek(context.Background(), WeekRequest{
		Athlete:    runnerOnboarding(),
		WeekNumber: 1,
		TotalWeeks: 16,
		WeekStart:  testMonday,
	})

	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestWeekGenerator_GarbageResponse(t *testing.T) {
	client := &stubClient{resp: &llm.GenerateResponse{Text: "Sorry, I can't help with that."}}
	gen := NewWeekGenerator(client)

	_, err := gen.GenerateWeek(context.Background(), WeekRequest{
		Athlete:    runnerOnboarding(),
		WeekNumber: 1,
		TotalWeeks: 16,
		WeekStart:  testMonday,
	})

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.False(t, errors.Is(err, llm.ErrUnavailable))
}
