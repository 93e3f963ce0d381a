package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/clinch-dev/clinch/internal/config"
)

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	RegistryDir        string
	RegistryPath       string
	RegistryCreated    bool
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

// InitProject creates the registry directory, the vault and an empty registry
type InitProject struct {
	cfg      *config.RuntimeConfig
	repo     ContractRepository
	progress ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, repo ContractRepository, progress ProgressSink) *InitProject {
	return &InitProject{
		cfg:      cfg,
		repo:     repo,
		progress: progress,
	}
}

// Run is idempotent: an existing registry file is never rewritten.
func (i *InitProject) Run(ctx context.Context) (*InitProjectResult, error) {
	result := &InitProjectResult{
		RegistryDir:  i.cfg.RegistryDir,
		RegistryPath: i.repo.Path(),
	}

	for _, dir := range []struct{ name, path string }{
		{"Create registry directory", i.cfg.RegistryDir},
		{"Create ABI vault", i.cfg.VaultDir},
	} {
		if err := os.MkdirAll(dir.path, 0755); err != nil {
			result.Steps = append(result.Steps, InitStep{Name: dir.name, Error: err})
			return result, fmt.Errorf("failed to create %s: %w", dir.path, err)
		}
		result.Steps = append(result.Steps, InitStep{Name: dir.name, Success: true, Message: dir.path})
	}

	if i.repo.Exists() {
		result.AlreadyInitialized = true
		result.Steps = append(result.Steps, InitStep{
			Name:    "Create registry",
			Success: true,
			Message: "Registry already exists",
		})
		return result, nil
	}

	i.progress.OnProgress(ctx, ProgressEvent{Stage: "init", Message: "Creating registry", Spinner: true})
	if err := i.repo.Save(ctx, nil); err != nil {
		result.Steps = append(result.Steps, InitStep{Name: "Create registry", Error: err})
		return result, err
	}
	i.progress.OnProgress(ctx, ProgressEvent{Stage: "init", Message: "Registry created"})

	result.RegistryCreated = true
	result.Steps = append(result.Steps, InitStep{
		Name:    "Create registry",
		Success: true,
		Message: result.RegistryPath,
	})
	return result, nil
}
