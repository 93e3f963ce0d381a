package adapters

import (
	"github.com/google/wire"

	"github.com/clinch-dev/clinch/internal/adapters/forge"
	"github.com/clinch-dev/clinch/internal/adapters/forge/broadcast"
	"github.com/clinch-dev/clinch/internal/adapters/fs"
	"github.com/clinch-dev/clinch/internal/adapters/git"
	"github.com/clinch-dev/clinch/internal/adapters/interactive"
	"github.com/clinch-dev/clinch/internal/adapters/progress"
	"github.com/clinch-dev/clinch/internal/adapters/repository/contracts"
	"github.com/clinch-dev/clinch/internal/adapters/security"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// ProvideABISummarizer provides the forge ABI summarizer
func ProvideABISummarizer() usecase.ABISummarizer {
	return forge.SummarizeABI
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	contracts.NewRegistryStoreFromConfig,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.RegistryStore)),

	fs.NewABIVaultFromConfig,
	wire.Bind(new(usecase.ABIVault), new(*fs.ABIVault)),
)

// ForgeSet provides readers for forge build and broadcast output
var ForgeSet = wire.NewSet(
	forge.NewArtifactLocatorFromConfig,
	wire.Bind(new(usecase.ArtifactLocator), new(*forge.ArtifactLocator)),

	broadcast.NewParserFromConfig,
	wire.Bind(new(usecase.TranscriptParser), new(*broadcast.Parser)),

	ProvideABISummarizer,
)

// SecuritySet provides the secret-leak scanner
var SecuritySet = wire.NewSet(
	security.NewLeakScanner,
	wire.Bind(new(usecase.LeakScanner), new(*security.LeakScanner)),
)

// GitSet provides version control
var GitSet = wire.NewSet(
	git.NewCommitterFromConfig,
	wire.Bind(new(usecase.VersionControl), new(*git.Committer)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet picks the progress sink for the current output mode
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ForgeSet,
	SecuritySet,
	GitSet,
	InteractiveSet,
	ProgressSet,
)
