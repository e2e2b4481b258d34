package domain

import (
	"math"
	"time"
)

// HRZone is a heart-rate band in whole bpm.
type HRZone struct {
	Min  int
	Max  int
	Name string
}

// HRZones derives the five training zones as fixed percentage bands of the
// athlete's lactate threshold heart rate, rounded to the nearest bpm.
func HRZones(lthr int) [5]HRZone {
	band := func(lo, hi float64, name string) HRZone {
		return HRZone{
			Min:  int(math.Round(float64(lthr) * lo)),
			Max:  int(math.Round(float64(lthr) * hi)),
			Name: name,
		}
	}
	return [5]HRZone{
		band(0.68, 0.73, "Recovery"),
		band(0.73, 0.80, "Aerobic"),
		band(0.80, 0.87, "Tempo"),
		band(0.87, 0.93, "Threshold"),
		band(0.93, 1.05, "VO2max"),
	}
}

// PhaseFor buckets the remaining weeks into the periodization phase.
// Boundaries tie toward the earlier, more conservative phase.
func PhaseFor(weekNumber, totalWeeks int) Phase {
	remaining := totalWeeks - weekNumber
	switch {
	case remaining <= 1:
		return PhaseRaceWeek
	case remaining <= 3:
		return PhaseTaper
	case remaining <= 6:
		return PhasePeak
	case remaining <= 10:
		return PhaseBuild2
	case remaining <= 14:
		return PhaseBuild1
	default:
		return PhaseBase
	}
}

// IsRecoveryWeek reports whether the week is a deload week.
// Every 4th week on a fixed cadence.
func IsRecoveryWeek(weekNumber int) bool {
	return weekNumber%4 == 0
}

const (
	minPlanWeeks = 1
	maxPlanWeeks = 52
)

// TotalWeeksUntil returns the whole weeks from now until the race date,
// rounded up and clamped to [1, 52]. The clamp bounds downstream loop and
// slice sizes; out-of-range values never reach the plan lifecycle.
func TotalWeeksUntil(raceDate, now time.Time) int {
	weeks := int(math.Ceil(raceDate.Sub(now).Hours() / (24 * 7)))
	if weeks < minPlanWeeks {
		return minPlanWeeks
	}
	if weeks > maxPlanWeeks {
		return maxPlanWeeks
	}
	return weeks
}

// MondayOf returns midnight UTC of the Monday of t's week.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}
