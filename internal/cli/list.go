package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinch-dev/clinch/internal/cli/render"
	"github.com/clinch-dev/clinch/internal/domain"
)

type listFlags struct {
	network    string
	verified   bool
	unverified bool
	sort       string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.network, "network", "n", "", "Only show contracts on this network")
	cmd.Flags().BoolVar(&f.verified, "verified", false, "Only show verified contracts")
	cmd.Flags().BoolVar(&f.unverified, "unverified", false, "Only show unverified contracts")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort by name or date (default: registry order)")
	cmd.MarkFlagsMutuallyExclusive("verified", "unverified")
}

func (f *listFlags) filter() (domain.ContractFilter, error) {
	filter := domain.ContractFilter{Network: f.network}

	switch domain.SortOrder(strings.ToLower(f.sort)) {
	case domain.SortNone:
	case domain.SortName:
		filter.Sort = domain.SortName
	case domain.SortDate:
		filter.Sort = domain.SortDate
	default:
		return filter, fmt.Errorf("invalid sort order: %s (valid: name, date)", f.sort)
	}

	switch {
	case f.verified:
		v := true
		filter.Verified = &v
	case f.unverified:
		v := false
		filter.Verified = &v
	}
	return filter, nil
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered contracts",
		Example: `  clinch list
  clinch list --network sepolia --verified
  clinch list --sort date --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}
			return runList(cmd, filter)
		},
	}

	flags.register(cmd)
	return cmd
}

// NewFindCmd creates the find command
func NewFindCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search contracts by name or address",
		Long: `Search contracts whose name or address contains the query, ignoring case.
Names that fuzzily match the query are included as well.`,
		Example: `  clinch find token
  clinch find 0x5fbd --network anvil`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}
			filter.Query = args[0]
			filter.Fuzzy = true
			return runList(cmd, filter)
		},
	}

	flags.register(cmd)
	return cmd
}

func runList(cmd *cobra.Command, filter domain.ContractFilter) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ListContracts.Run(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if handled, err := render.Structured(cmd.OutOrStdout(), app.Config.Format, result.Contracts); handled {
		return err
	}
	return render.NewContractsRenderer(cmd.OutOrStdout()).RenderList(result)
}
