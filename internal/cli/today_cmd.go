package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/taper/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Plans.TodayWorkout(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTodayWorkout(w))
			return nil
		},
	}
}

func newUpcomingCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next scheduled workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := app.Plans.UpcomingWorkouts(context.Background(), time.Now(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorkoutList("Upcoming", workouts))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum number of workouts to show")

	return cmd
}
