package render

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clinch-dev/clinch/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders per-network counts followed by the chain table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	title := cases.Title(language.English)

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No contracts registered yet")
	} else {
		fmt.Fprintln(r.out, "🌐 Registered Networks:")
		fmt.Fprintln(r.out)
		for _, n := range result.Networks {
			chain := "custom"
			if n.ChainID != 0 {
				chain = fmt.Sprintf("chain %d", n.ChainID)
			}
			fmt.Fprintf(r.out, "  %s %s  %d contract(s), %s\n",
				networkStyle.Sprintf("%-14s", title.String(n.Name)),
				timestampStyle.Sprintf("(%s)", chain),
				n.Total,
				verifiedStyle.Sprintf("%d verified", n.Verified))
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Known chains:")
	for _, k := range result.Known {
		fmt.Fprintf(r.out, "  %-10d %s\n", k.ChainID, k.Name)
	}
	return nil
}
