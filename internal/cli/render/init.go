package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/clinch-dev/clinch/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	for _, step := range result.Steps {
		if step.Success {
			fmt.Fprintln(r.out, FormatSuccess(step.Name))
			continue
		}
		color.New(color.FgRed).Fprintf(r.out, "❌ %s\n", step.Name)
		if step.Error != nil {
			fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
		}
	}

	fmt.Fprintln(r.out)
	if result.AlreadyInitialized {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("clinch was already initialized in %s", result.RegistryDir)))
		return nil
	}
	if result.RegistryCreated {
		fmt.Fprintf(r.out, "Registry created at %s\n", result.RegistryPath)
		fmt.Fprintln(r.out, "Next: run `clinch add` or `clinch sync` after a forge script broadcast.")
	}
	return nil
}
