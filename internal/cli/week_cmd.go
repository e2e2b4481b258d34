package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/taper/internal/cli/formatter"
	"github.com/alexanderramin/taper/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the current training week",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.CurrentPlan(context.Background())
			if err != nil {
				return err
			}

			if plan.Completed() {
				fmt.Println(formatter.StyleGreen.Render("Plan complete. See `taper status` for the full journey."))
				return nil
			}
			if plan.CurrentWeek == nil {
				fmt.Println(formatter.StyleYellow.Render(
					fmt.Sprintf("Week %d has not been generated yet. Run `taper week next` to retry.", plan.CurrentWeekNumber)))
				return nil
			}

			fmt.Print(formatter.FormatWeek(plan.CurrentWeek))
			return nil
		},
	}

	cmd.AddCommand(newWeekNextCmd(app))

	return cmd
}

func newWeekNextCmd(app *App) *cobra.Command {
	var (
		feeling     string
		issues      []string
		notes       string
		constraints string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Finish this week and generate the next one",
		Long: "Archives the current week with your feedback, then asks the coach\n" +
			"for next week's plan. Feedback shapes what comes next: fatigue or\n" +
			"physical issues reduce the load, constraints reshape the schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback := domain.WeekFeedback{
				OverallFeeling:      domain.WeekFeeling(feeling),
				PhysicalIssues:      issues,
				Notes:               notes,
				NextWeekConstraints: constraints,
			}

			stop := formatter.StartSpinner("Generating next week...")
			outcome, err := app.Plans.AdvanceWeek(context.Background(), feedback, constraints)
			stop()
			if err != nil {
				return err
			}

			plan := outcome.Plan
			if plan.Completed() {
				fmt.Println(formatter.StyleGreen.Render(
					fmt.Sprintf("That was the final training week. %s is up next - trust the work, race well.", plan.RaceName)))
				return nil
			}

			if outcome.Fallback {
				fmt.Println(formatter.StyleYellow.Render(
					fmt.Sprintf("Coach unavailable - week %d is a standard plan week, not personalized.", plan.CurrentWeekNumber)))
				fmt.Println(formatter.Dim(fmt.Sprintf("cause: %v", outcome.GenerationErr)))
				fmt.Println()
			}
			fmt.Print(formatter.FormatWeek(plan.CurrentWeek))
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue(&feeling, "okay",
		"struggling", "tired", "okay", "good", "great"), "feeling", "How the week felt overall")
	cmd.Flags().StringSliceVar(&issues, "issues", nil, "Physical issues, e.g. \"sore achilles\"")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes about the week")
	cmd.Flags().StringVar(&constraints, "constraints", "", "Constraints for next week, e.g. \"traveling Thu-Fri\"")

	return cmd
}
