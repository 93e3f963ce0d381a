package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
	"github.com/clinch-dev/clinch/internal/domain"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show contract details",
		Long: `Show a registered contract with its deployment data, aliases and a summary
of its stored ABI. Without a name, pick the contract interactively.`,
		Example: `  clinch show Token
  clinch show token --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				list, err := app.ListContracts.Run(cmd.Context(), domain.ContractFilter{})
				if err != nil {
					return err
				}
				selected, err := app.Selector.SelectContract(cmd.Context(), list.Contracts, "Select a contract")
				if err != nil {
					return err
				}
				name = selected.Name
			}

			result, err := app.ShowContract.Run(cmd.Context(), name)
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Contract); handled {
				return err
			}
			return render.NewContractRenderer(cmd.OutOrStdout()).RenderContract(result)
		},
	}

	return cmd
}
