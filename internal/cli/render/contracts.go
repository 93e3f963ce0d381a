package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/clinch-dev/clinch/internal/domain/models"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// Color styles for table format
var (
	nameStyle          = color.New(color.FgGreen, color.Bold)
	addressStyle       = color.New(color.FgWhite)
	networkStyle       = color.New(color.FgCyan)
	timestampStyle     = color.New(color.Faint)
	verifiedStyle      = color.New(color.FgGreen)
	notVerifiedStyle   = color.New(color.FgRed)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
)

// ContractsRenderer renders contract lists as tables
type ContractsRenderer struct {
	out io.Writer
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer) *ContractsRenderer {
	return &ContractsRenderer{out: out}
}

// RenderList renders a listing with a trailing count line
func (r *ContractsRenderer) RenderList(result *usecase.ContractListResult) error {
	if result.Total == 0 {
		fmt.Fprintln(r.out, "No contracts registered yet. Use `clinch add` or `clinch sync`.")
		return nil
	}
	if len(result.Contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts match the given filters")
		return nil
	}

	fmt.Fprintln(r.out, renderContractsTable(result.Contracts))
	fmt.Fprintln(r.out)
	r.renderSummary(result)
	return nil
}

func (r *ContractsRenderer) renderSummary(result *usecase.ContractListResult) {
	s := result.Summary
	if s.Total == result.Total {
		fmt.Fprintf(r.out, "%d contract(s)", s.Total)
	} else {
		fmt.Fprintf(r.out, "%d of %d contract(s)", s.Total, result.Total)
	}
	fmt.Fprintf(r.out, " · %s · %s\n",
		verifiedStyle.Sprintf("%d verified", s.Verified),
		notVerifiedStyle.Sprintf("%d unverified", s.Unverified))

	if len(s.ByNetwork) > 1 {
		networks := make([]string, 0, len(s.ByNetwork))
		for n := range s.ByNetwork {
			networks = append(networks, n)
		}
		sort.Strings(networks)
		for _, n := range networks {
			fmt.Fprintf(r.out, "  %s %d\n", networkStyle.Sprintf("%-12s", n), s.ByNetwork[n])
		}
	}
}

func renderContractsTable(contracts []*models.Contract) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{
		sectionHeaderStyle.Sprint("NAME"),
		sectionHeaderStyle.Sprint("ADDRESS"),
		sectionHeaderStyle.Sprint("NETWORK"),
		sectionHeaderStyle.Sprint("STATUS"),
		sectionHeaderStyle.Sprint("DEPLOYED"),
	})

	for _, c := range contracts {
		t.AppendRow(table.Row{
			nameStyle.Sprint(c.Name),
			addressStyle.Sprint(c.Address),
			networkStyle.Sprint(c.Network),
			verifiedLabel(c.Verified),
			timestampStyle.Sprint(FormatTimestamp(c.DeployedAt)),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft},
	})

	return t.Render()
}
