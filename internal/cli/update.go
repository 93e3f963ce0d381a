package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd() *cobra.Command {
	var (
		newName    string
		address    string
		network    string
		abiPath    string
		verified   bool
		unverified bool
	)

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Change fields of a registered contract",
		Long: `Change fields of a registered contract. Only the flags you pass are applied;
at least one is required.`,
		Example: `  clinch update Token --verified
  clinch update Token --name TokenV1
  clinch update Token --address 0x... --abi out/Token.sol/Token.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.UpdateContractParams{
				Name:    args[0],
				ABIPath: abiPath,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				params.NewName = &newName
			}
			if flags.Changed("address") {
				params.Address = &address
			}
			if flags.Changed("network") {
				params.Network = &network
			}
			if flags.Changed("verified") {
				params.Verified = &verified
			}
			if flags.Changed("unverify") {
				v := !unverified
				params.Verified = &v
			}

			result, err := app.UpdateContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.After); handled {
				return err
			}
			render.NewContractRenderer(cmd.OutOrStdout()).RenderUpdated(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "New name")
	cmd.Flags().StringVar(&address, "address", "", "New address")
	cmd.Flags().StringVar(&network, "network", "", "New network")
	cmd.Flags().StringVar(&abiPath, "abi", "", "ABI or forge artifact file to copy into the registry")
	cmd.Flags().BoolVar(&verified, "verified", false, "Mark as verified")
	cmd.Flags().BoolVar(&unverified, "unverify", false, "Mark as not verified")
	cmd.MarkFlagsMutuallyExclusive("verified", "unverify")

	return cmd
}
