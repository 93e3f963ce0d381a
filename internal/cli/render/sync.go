package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/clinch-dev/clinch/internal/usecase"
)

// SyncRenderer handles rendering of sync results
type SyncRenderer struct {
	out io.Writer
}

// NewSyncRenderer creates a new sync renderer
func NewSyncRenderer(out io.Writer) *SyncRenderer {
	return &SyncRenderer{
		out: out,
	}
}

// RenderSyncResult renders the result of sync operation
func (r *SyncRenderer) RenderSyncResult(result *usecase.SyncResult) error {
	fmt.Fprintf(r.out, "Synced from %s\n", timestampStyle.Sprint(result.BroadcastPath))

	if result.ParseErr != nil {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("could not read broadcast: %v", result.ParseErr)))
		return nil
	}

	if len(result.Synced) == 0 {
		fmt.Fprintln(r.out, "No new contracts found")
	} else {
		fmt.Fprintf(r.out, "\nAdded on %s:\n", networkStyle.Sprint(result.Network))
		for _, c := range result.Synced {
			line := fmt.Sprintf("  • %s %s", nameStyle.Sprint(c.Name), addressStyle.Sprint(c.Address))
			if c.TxHash != "" {
				line += timestampStyle.Sprintf(" (tx %s)", shortHash(c.TxHash))
			}
			fmt.Fprintln(r.out, line)
		}
	}

	for _, alias := range result.Aliases {
		fmt.Fprintln(r.out, FormatInfo(aliasNotice(alias.Contract, alias.AliasOf)))
	}

	if len(result.Conflicts) > 0 {
		color.New(color.FgYellow).Fprintf(r.out, "\nSkipped (name already registered):\n")
		for _, conflict := range result.Conflicts {
			fmt.Fprintf(r.out, "  • %s → try %s\n", conflict.Contract.Name, conflict.Err.Suggestion)
		}
	}

	if len(result.Dropped) > 0 {
		color.New(color.FgYellow).Fprintf(r.out, "\nDropped:\n")
		for _, d := range result.Dropped {
			fmt.Fprintf(r.out, "  • %s: %s\n", d.Name, d.Reason)
		}
	}

	r.renderGit(result)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d contract(s) added", len(result.Synced))))
	return nil
}

func (r *SyncRenderer) renderGit(result *usecase.SyncResult) {
	if result.GitErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("git: %v (registry saved locally)", result.GitErr)))
		return
	}
	if result.Commit == nil {
		return
	}
	if !result.Commit.Committed {
		fmt.Fprintln(r.out, "Git: nothing to commit")
		return
	}
	fmt.Fprintf(r.out, "Git: committed %s on %s\n", shortHash(result.Commit.Commit), result.Commit.Branch)
	if result.Commit.Pushed {
		fmt.Fprintf(r.out, "Git: pushed %s\n", result.Commit.Branch)
	}
}
