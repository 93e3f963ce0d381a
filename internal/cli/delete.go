package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"remove", "rm"},
		Short:   "Remove a contract from the registry",
		Long: `Remove a contract from the registry together with its stored ABI.
Asks for confirmation unless --force or --non-interactive is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !force && !app.Config.NonInteractive {
				shown, err := app.ShowContract.Run(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c := shown.Contract
				ok, err := app.Selector.Confirm(cmd.Context(),
					fmt.Sprintf("Delete %s (%s on %s)", c.Name, c.Address, c.Network))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			result, err := app.DeleteContract.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Contract); handled {
				return err
			}
			render.NewContractRenderer(cmd.OutOrStdout()).RenderDeleted(result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
