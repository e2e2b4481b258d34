package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/taper/internal/domain"
	"github.com/alexanderramin/taper/internal/llm"
)

// WeekRequest carries everything needed to generate one training week.
type WeekRequest struct {
	Athlete     domain.OnboardingData
	WeekNumber  int
	TotalWeeks  int
	History     []domain.CompletedWeek // oldest first
	Constraints string                 // athlete free text for the upcoming week
	WeekStart   time.Time              // Monday the week begins on
}

// WeekGenerator produces personalized training weeks via the external
// generation API.
type WeekGenerator interface {
	GenerateWeek(ctx context.Context, req WeekRequest) (*domain.WeekPlan, error)
}

type weekGenerator struct {
	client llm.GenerationClient
}

// NewWeekGenerator creates a WeekGenerator backed by a generation client.
func NewWeekGenerator(client llm.GenerationClient) WeekGenerator {
	return &weekGenerator{client: client}
}

func (g *weekGenerator) GenerateWeek(ctx context.Context, req WeekRequest) (*domain.WeekPlan, error) {
	prompt := BuildWeekPrompt(req.Athlete, req.WeekNumber, req.TotalWeeks, req.History, req.Constraints)

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generating week %d: %w", req.WeekNumber, err)
	}

	// A truncated response is still handed to the repair-then-parse
	// pipeline; the client has already flagged it for observability.
	phase := domain.PhaseFor(req.WeekNumber, req.TotalWeeks)
	week, err := ParseWeekResponse(resp.Text, req.WeekNumber, phase, req.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("parsing week %d: %w", req.WeekNumber, err)
	}
	return week, nil
}
