package cli

import (
	"github.com/alexanderramin/taper/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Plans service.PlanService
}

// NewRootCmd creates the top-level "taper" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "taper",
		Short:         "Adaptive endurance training plans from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(app),
		newStatusCmd(app),
		newWeekCmd(app),
		newTodayCmd(app),
		newUpcomingCmd(app),
		newWorkoutCmd(app),
		newResetCmd(app),
	)

	return root
}
