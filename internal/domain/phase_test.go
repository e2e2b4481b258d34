package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHRZones_LTHR172(t *testing.T) {
	zones := HRZones(172)

	assert.Equal(t, "Recovery", zones[0].Name)
	assert.Equal(t, 117, zones[0].Min)
	assert.Equal(t, 126, zones[0].Max)

	// Threshold band for LTHR 172 is approximately 150-160 bpm.
	assert.Equal(t, "Threshold", zones[3].Name)
	assert.Equal(t, 150, zones[3].Min)
	assert.Equal(t, 160, zones[3].Max)

	assert.Equal(t, "VO2max", zones[4].Name)
	assert.Equal(t, 181, zones[4].Max)
}

func TestHRZones_Contiguous(t *testing.T) {
	zones := HRZones(165)
	for i := 1; i < len(zones); i++ {
		assert.Equal(t, zones[i-1].Max, zones[i].Min, "zone %d should start where zone %d ends", i+1, i)
	}
}

func TestPhaseFor_Boundaries(t *testing.T) {
	tests := []struct {
		week, total int
		want        Phase
	}{
		{1, 20, PhaseBase},
		{5, 20, PhaseBase},
		{6, 20, PhaseBuild1},
		{10, 20, PhaseBuild2},
		{14, 20, PhasePeak},
		{17, 20, PhaseTaper},
		{19, 20, PhaseRaceWeek},
		{20, 20, PhaseRaceWeek},
		{1, 12, PhaseBuild2},
		{3, 3, PhaseRaceWeek},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseFor(tt.week, tt.total), "PhaseFor(%d, %d)", tt.week, tt.total)
	}
}

func TestPhaseFor_BaseClassAtTwelveWeeksOut(t *testing.T) {
	// A 12-week block opens in an early-stage phase, never taper or later.
	got := PhaseFor(1, 12)
	assert.Contains(t, []Phase{PhaseBase, PhaseBuild1, PhaseBuild2}, got)
}

func TestPhaseFor_Monotonic(t *testing.T) {
	order := map[Phase]int{
		PhaseBase:     0,
		PhaseBuild1:   1,
		PhaseBuild2:   2,
		PhasePeak:     3,
		PhaseTaper:    4,
		PhaseRaceWeek: 5,
	}
	for total := 1; total <= 52; total++ {
		prev := -1
		for week := 1; week <= total; week++ {
			rank, ok := order[PhaseFor(week, total)]
			require.True(t, ok)
			assert.GreaterOrEqual(t, rank, prev,
				"phase regressed at week %d of %d", week, total)
			prev = rank
		}
	}
}

func TestIsRecoveryWeek_Cadence(t *testing.T) {
	for n := 1; n <= 20; n++ {
		assert.Equal(t, n%4 == 0, IsRecoveryWeek(n), "week %d", n)
	}
}

func TestTotalWeeksUntil(t *testing.T) {
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		race time.Time
		want int
	}{
		{"twelve weeks out", now.AddDate(0, 0, 12*7), 12},
		{"partial week rounds up", now.AddDate(0, 0, 8), 2},
		{"past date clamps to one", now.AddDate(0, 0, -30), 1},
		{"tomorrow clamps to one", now.AddDate(0, 0, 1), 1},
		{"two years out clamps to 52", now.AddDate(2, 0, 0), 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalWeeksUntil(tt.race, now))
		})
	}
}

func TestMondayOf(t *testing.T) {
	// Wednesday 2025-03-05 -> Monday 2025-03-03.
	wed := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), MondayOf(wed))

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), MondayOf(sun))

	// Monday maps to itself.
	mon := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, MondayOf(mon))
}
