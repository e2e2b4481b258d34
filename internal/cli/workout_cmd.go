package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/taper/internal/cli/formatter"
	"github.com/alexanderramin/taper/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Inspect and log workouts",
	}

	cmd.AddCommand(
		newWorkoutShowCmd(app),
		newWorkoutLogCmd(app, "done", domain.WorkoutCompleted, "Mark a workout as completed"),
		newWorkoutLogCmd(app, "partial", domain.WorkoutPartial, "Mark a workout as partially completed"),
		newWorkoutSkipCmd(app),
	)

	return cmd
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show workout details",
		Long:  "REF is a workout ID, an ID prefix, or a weekday like \"tuesday\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Plans.WorkoutByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorkoutDetail(w))
			return nil
		},
	}
}

func newWorkoutLogCmd(app *App, use string, status domain.WorkoutStatus, short string) *cobra.Command {
	var (
		minutes  int
		distance float64
		avgHR    int
		feeling  int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   use + " REF",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var actual *domain.ActualData
			if cmd.Flags().Changed("minutes") || cmd.Flags().Changed("distance") ||
				cmd.Flags().Changed("avg-hr") || cmd.Flags().Changed("feeling") ||
				cmd.Flags().Changed("notes") {
				if feeling != 0 && (feeling < 1 || feeling > 5) {
					return fmt.Errorf("--feeling must be between 1 and 5")
				}
				actual = &domain.ActualData{
					DurationMin: minutes,
					DistanceKm:  distance,
					AvgHR:       avgHR,
					Feeling:     feeling,
					Notes:       notes,
				}
			}

			if err := app.Plans.UpdateWorkoutStatus(ctx, id, status, actual); err != nil {
				return err
			}

			w, err := app.Plans.WorkoutByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", formatter.StatusPill(w.Status), w.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Actual duration in minutes")
	cmd.Flags().Float64Var(&distance, "distance", 0, "Actual distance in km")
	cmd.Flags().IntVar(&avgHR, "avg-hr", 0, "Average heart rate")
	cmd.Flags().IntVar(&feeling, "feeling", 0, "How it felt, 1 (awful) to 5 (great)")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")

	return cmd
}

func newWorkoutSkipCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "skip REF",
		Short: "Mark a workout as skipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var actual *domain.ActualData
			if notes != "" {
				actual = &domain.ActualData{Notes: notes}
			}
			if err := app.Plans.UpdateWorkoutStatus(ctx, id, domain.WorkoutSkipped, actual); err != nil {
				return err
			}
			fmt.Printf("Skipped workout %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Why it was skipped")

	return cmd
}
