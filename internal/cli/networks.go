package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "Show contract counts per network",
		Long: `Show how many contracts are registered on each network and how many of them
are verified, followed by the built-in chain id table used by sync.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Networks); handled {
				return err
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}
}
