package progress

import (
	"github.com/clinch-dev/clinch/internal/config"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewProgressSink picks the spinner for interactive table output and the
// no-op sink everywhere else, so json and yaml output stay clean.
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Format != "table" {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
