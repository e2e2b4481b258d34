package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/taper/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"show"},
		Short:   "Show plan overview and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := app.Plans.CurrentPlan(ctx)
			if err != nil {
				return err
			}
			progress, err := app.Plans.PlanProgress(ctx)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlanStatus(plan, progress, time.Now()))
			return nil
		},
	}
}
