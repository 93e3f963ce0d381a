package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the registry in the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitProject.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewInitRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
