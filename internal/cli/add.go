package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	var (
		abiPath  string
		verified bool
	)

	cmd := &cobra.Command{
		Use:   "add <name> <address> <network>",
		Short: "Register a deployed contract",
		Long: `Register a deployed contract under a name.

Names are unique regardless of case. Registering a second name for an address
that is already known on the same network is allowed and reported as an alias.`,
		Example: `  clinch add Token 0x5FbDB2315678afecb367f032d93F642f64180aa3 anvil
  clinch add Token 0x5FbDB2315678afecb367f032d93F642f64180aa3 sepolia --abi out/Token.sol/Token.json --verified`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AddContract.Run(cmd.Context(), usecase.AddContractParams{
				Name:     args[0],
				Address:  args[1],
				Network:  args[2],
				ABIPath:  abiPath,
				Verified: verified,
			})
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Contract); handled {
				return err
			}
			render.NewContractRenderer(cmd.OutOrStdout()).RenderAdded(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&abiPath, "abi", "", "ABI or forge artifact file to copy into the registry")
	cmd.Flags().BoolVar(&verified, "verified", false, "Mark the contract as verified")

	return cmd
}
