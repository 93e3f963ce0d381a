package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// ContractRenderer renders single-contract results
type ContractRenderer struct {
	out io.Writer
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer) *ContractRenderer {
	return &ContractRenderer{out: out}
}

// RenderContract renders the details view of show
func (r *ContractRenderer) RenderContract(result *usecase.ShowContractResult) error {
	c := result.Contract
	label := color.New(color.Faint)

	fmt.Fprintln(r.out, nameStyle.Sprint(c.Name))
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Address:  "), domain.ChecksumAddress(c.Address))
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Network:  "), networkStyle.Sprint(c.Network))
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Status:   "), verifiedLabel(c.Verified))
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Deployed: "), FormatTimestamp(c.DeployedAt))
	if c.TxHash != "" {
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Tx:       "), c.TxHash)
	}
	if c.Deployer != "" {
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Deployer: "), c.Deployer)
	}

	switch {
	case c.ABI == "":
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("ABI:      "), label.Sprint("none"))
	case result.ABI != nil:
		fmt.Fprintf(r.out, "  %s %s (%s)\n", label.Sprint("ABI:      "), c.ABI, summarizeABI(result.ABI))
		if len(result.ABI.FunctionNames) > 0 {
			fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Functions:"), strings.Join(result.ABI.FunctionNames, ", "))
		}
	default:
		fmt.Fprintf(r.out, "  %s %s %s\n", label.Sprint("ABI:      "), c.ABI,
			notVerifiedStyle.Sprintf("(unreadable: %v)", result.ABIError))
	}

	if len(result.Aliases) > 0 {
		names := make([]string, len(result.Aliases))
		for i, a := range result.Aliases {
			names[i] = a.Name
		}
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Aliases:  "), strings.Join(names, ", "))
	}

	return nil
}

// RenderAdded reports the outcome of add
func (r *ContractRenderer) RenderAdded(result *usecase.AddContractResult) {
	c := result.Contract
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Added %s at %s on %s", c.Name, c.Address, c.Network)))
	if result.AliasOf != nil {
		fmt.Fprintln(r.out, FormatInfo(aliasNotice(c, result.AliasOf)))
	}
	r.renderABIOutcome(result.ABIRequested, result.ABICaptured, c)
}

// RenderUpdated reports the outcome of update
func (r *ContractRenderer) RenderUpdated(result *usecase.UpdateContractResult) {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Updated %s", result.After.Name)))
	for _, change := range diffContracts(result.Before, result.After) {
		fmt.Fprintf(r.out, "  %s\n", change)
	}
	for _, alias := range result.Aliases {
		fmt.Fprintln(r.out, FormatInfo(aliasNotice(result.After, alias)))
	}
	r.renderABIOutcome(result.ABIRequested, result.ABICaptured, result.After)
}

// RenderDeleted reports the outcome of delete
func (r *ContractRenderer) RenderDeleted(result *usecase.DeleteContractResult) {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deleted %s", result.Contract.Name)))
	if result.ABIRemoved {
		fmt.Fprintf(r.out, "  removed %s\n", result.Contract.ABI)
	}
}

func (r *ContractRenderer) renderABIOutcome(requested, captured bool, c *models.Contract) {
	if !requested {
		return
	}
	if captured {
		fmt.Fprintf(r.out, "  ABI stored as %s\n", c.ABI)
		return
	}
	fmt.Fprintln(r.out, FormatWarning("ABI could not be copied; the contract was saved without it"))
}

func aliasNotice(c, existing *models.Contract) string {
	return fmt.Sprintf("%s is an alias: %s already points to %s on %s",
		c.Name, existing.Name, existing.Address, existing.Network)
}

func summarizeABI(s *usecase.ABISummary) string {
	parts := []string{
		fmt.Sprintf("%d functions", s.Functions),
		fmt.Sprintf("%d events", s.Events),
	}
	if s.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", s.Errors))
	}
	if s.HasConstructor {
		parts = append(parts, "constructor")
	}
	return strings.Join(parts, ", ")
}

func diffContracts(before, after *models.Contract) []string {
	var changes []string
	add := func(field, from, to string) {
		if from != to {
			changes = append(changes, fmt.Sprintf("%s: %s → %s", field, from, to))
		}
	}
	add("name", before.Name, after.Name)
	add("address", before.Address, after.Address)
	add("network", before.Network, after.Network)
	add("verified", fmt.Sprint(before.Verified), fmt.Sprint(after.Verified))
	add("abi", orDash(before.ABI), orDash(after.ABI))
	return changes
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
