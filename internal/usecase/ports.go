package usecase

import (
	"context"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// ContractRepository persists the whole registry. Load never fails; Save is
// atomic and reports every failure.
type ContractRepository interface {
	Load(ctx context.Context) []*models.Contract
	Save(ctx context.Context, contracts []*models.Contract) error
	Path() string
	Exists() bool
}

// ABIVault stores interface definitions next to the registry
type ABIVault interface {
	// Capture copies a user-supplied file; ok=false means carry on without ABI.
	Capture(ctx context.Context, sourcePath, name, address string) (ref string, ok bool)
	Store(ctx context.Context, name, address string, data []byte) (string, error)
	Read(ctx context.Context, ref string) ([]byte, error)
	// Remove is best-effort and reports whether a file was deleted.
	Remove(ctx context.Context, ref string) bool
}

// ArtifactLocator looks up compiled ABIs in the build output
type ArtifactLocator interface {
	FindABI(ctx context.Context, contractName string) ([]byte, bool)
}

// TranscriptParser reads Foundry broadcast files
type TranscriptParser interface {
	ParseBroadcastFile(file string) (*domain.BroadcastFile, error)
	FindLatest() (string, error)
}

// LeakScanner flags records carrying private-key-shaped values
type LeakScanner interface {
	HasLeak(c *models.Contract) bool
}

// VersionControl commits registry changes
type VersionControl interface {
	CommitRegistry(ctx context.Context, dir, message string, push bool) (*CommitResult, error)
}

// CommitResult describes what the version-control step did
type CommitResult struct {
	Message   string
	Committed bool
	Commit    string
	Branch    string
	Pushed    bool
}

// ABISummarizer parses stored ABIs for display
type ABISummarizer func(data []byte) (*ABISummary, error)

// ABISummary counts the members of an interface definition
type ABISummary struct {
	Functions      int
	Events         int
	Errors         int
	HasConstructor bool
	FunctionNames  []string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// InteractiveSelector asks the user to choose or confirm
type InteractiveSelector interface {
	SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error)
	Confirm(ctx context.Context, message string) (bool, error)
}
