package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the plan and athlete profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("this deletes your plan and all history; re-run with --force to confirm")
			}
			if err := app.Plans.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Println("Plan and profile deleted. Run `taper init` to start over.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")

	return cmd
}
