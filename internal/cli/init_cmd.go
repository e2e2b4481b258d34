package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/taper/internal/cli/formatter"
	"github.com/alexanderramin/taper/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var (
		fromFile      string
		name          string
		age           int
		gender        string
		weight        float64
		height        float64
		level         string
		lthr          int
		maxHR         int
		thresholdPace string
		ftp           int
		swimLevel     string
		raceType      string
		raceName      string
		raceDate      string
		goalTime      string
		priority      string
		restDays      []string
		longDay       string
		hoursTarget   string
	)

	buildOnboarding := func() domain.OnboardingData {
		data := domain.OnboardingData{
			Profile: domain.AthleteProfile{
				FirstName: name,
				Age:       age,
				Gender:    gender,
				WeightKg:  weight,
				HeightCm:  height,
			},
			Fitness: domain.FitnessAssessment{
				Level:         domain.FitnessLevel(level),
				LTHR:          lthr,
				MaxHR:         maxHR,
				ThresholdPace: thresholdPace,
				SwimLevel:     domain.SwimLevel(swimLevel),
			},
			Goal: domain.RaceGoal{
				RaceType: domain.RaceType(raceType),
				RaceName: raceName,
				GoalTime: goalTime,
				Priority: domain.GoalPriority(priority),
			},
			Availability: buildAvailability(restDays, longDay, hoursTarget),
		}
		if ftp > 0 {
			data.Fitness.FTP = &ftp
		}
		return data
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up your athlete profile and generate week 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data domain.OnboardingData
			if fromFile != "" {
				loaded, err := loadOnboardingFile(fromFile)
				if err != nil {
					return err
				}
				data = *loaded
			} else {
				for _, f := range []string{"name", "race-type", "race-date", "lthr"} {
					if !cmd.Flags().Changed(f) {
						return fmt.Errorf("either --file or --%s is required", f)
					}
				}
				date, err := time.Parse("2006-01-02", raceDate)
				if err != nil {
					return fmt.Errorf("invalid --race-date %q: use YYYY-MM-DD", raceDate)
				}
				data = buildOnboarding()
				data.Goal.RaceDate = date
			}
			if !data.Goal.RaceDate.After(time.Now()) {
				return fmt.Errorf("race date %s is not in the future", data.Goal.RaceDate.Format("2006-01-02"))
			}

			stop := formatter.StartSpinner("Generating your first training week...")
			outcome, err := app.Plans.InitializePlan(context.Background(), data)
			stop()
			if err != nil {
				return err
			}

			plan := outcome.Plan
			fmt.Printf("Plan created: %d weeks to %s on %s.\n\n",
				plan.TotalWeeks, plan.RaceName, plan.RaceDate.Format("Jan 2, 2006"))
			if outcome.Fallback {
				fmt.Println(formatter.StyleYellow.Render(
					"Coach unavailable - week 1 is a standard plan week, not personalized."))
				fmt.Println(formatter.Dim(fmt.Sprintf("cause: %v", outcome.GenerationErr)))
				fmt.Println()
			}
			fmt.Print(formatter.FormatWeek(plan.CurrentWeek))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "Load the full athlete profile from a JSON file")
	cmd.Flags().StringVar(&name, "name", "", "First name")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Var(newEnumValue(&level, "intermediate",
		"beginner", "intermediate", "advanced", "elite"), "level", "Fitness level")
	cmd.Flags().IntVar(&lthr, "lthr", 0, "Lactate threshold heart rate (bpm)")
	cmd.Flags().IntVar(&maxHR, "max-hr", 0, "Maximum heart rate (bpm)")
	cmd.Flags().StringVar(&thresholdPace, "threshold-pace", "", "Threshold pace in min/km, e.g. 4:45")
	cmd.Flags().IntVar(&ftp, "ftp", 0, "Cycling FTP in watts")
	cmd.Flags().Var(newEnumValue(&swimLevel, "comfortable",
		"cant-swim", "learning", "comfortable", "competitive"), "swim-level", "Swim ability")
	cmd.Flags().Var(newEnumValue(&raceType, "",
		"marathon", "half-marathon", "olympic-triathlon", "sprint-triathlon",
		"70.3-ironman", "full-ironman", "custom"), "race-type", "Target race type")
	cmd.Flags().StringVar(&raceName, "race-name", "", "Race name")
	cmd.Flags().StringVar(&raceDate, "race-date", "", "Race date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&goalTime, "goal-time", "", "Goal finish time, e.g. 1:45:00")
	cmd.Flags().Var(newEnumValue(&priority, "finish",
		"finish", "pb", "podium"), "priority", "Race goal priority")
	cmd.Flags().StringSliceVar(&restDays, "rest-days", nil, "Weekdays with no training, e.g. wednesday,friday")
	cmd.Flags().StringVar(&longDay, "long-day", "saturday", "Weekday reserved for the long session")
	cmd.Flags().StringVar(&hoursTarget, "hours", "6-8", "Weekly hours target, e.g. 6-8")

	return cmd
}

func loadOnboardingFile(path string) (*domain.OnboardingData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading onboarding file: %w", err)
	}
	var data domain.OnboardingData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing onboarding file %s: %w", path, err)
	}
	return &data, nil
}

// buildAvailability expands the rest-day and long-day flags into a full
// weekly schedule. Non-rest days default to morning and evening slots.
func buildAvailability(restDays []string, longDay, hoursTarget string) domain.WeeklyAvailability {
	rest := make(map[string]bool, len(restDays))
	for _, d := range restDays {
		rest[strings.ToLower(strings.TrimSpace(d))] = true
	}
	longDay = strings.ToLower(strings.TrimSpace(longDay))

	dayFor := func(name string) domain.DayAvailability {
		if rest[name] {
			return domain.DayAvailability{Available: false}
		}
		day := domain.DayAvailability{
			Available:   true,
			TimeSlots:   []domain.TimeSlot{domain.SlotMorning, domain.SlotEvening},
			MaxDuration: "90min",
		}
		if name == longDay {
			day.LongSession = true
			day.MaxDuration = "3h"
		}
		return day
	}

	return domain.WeeklyAvailability{
		Monday:            dayFor("monday"),
		Tuesday:           dayFor("tuesday"),
		Wednesday:         dayFor("wednesday"),
		Thursday:          dayFor("thursday"),
		Friday:            dayFor("friday"),
		Saturday:          dayFor("saturday"),
		Sunday:            dayFor("sunday"),
		WeeklyHoursTarget: hoursTarget,
	}
}
