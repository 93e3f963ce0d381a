package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	var params usecase.SyncParams

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Import contracts from a Foundry broadcast file",
		Long: `Import the contracts created by a forge script run.

By default the newest run-latest.json under the broadcast directory is used.
Contracts whose name is already taken are skipped with a suggested alternative.
With --git the registry directory is committed afterwards; a git failure never
undoes the import.`,
		Example: `  clinch sync
  clinch sync --broadcast broadcast/Deploy.s.sol/11155111/run-latest.json
  clinch sync --git --push`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SyncRegistry.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Synced); handled {
				return err
			}
			return render.NewSyncRenderer(cmd.OutOrStdout()).RenderSyncResult(result)
		},
	}

	cmd.Flags().StringVar(&params.BroadcastPath, "broadcast", "", "Broadcast file to import (default: newest run-latest.json)")
	cmd.Flags().BoolVar(&params.Git, "git", false, "Commit the registry after syncing")
	cmd.Flags().BoolVar(&params.Push, "push", false, "Push the commit (implies --git)")

	return cmd
}
