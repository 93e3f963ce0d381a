package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clinch-dev/clinch/internal/config"
	domainconfig "github.com/clinch-dev/clinch/internal/domain/config"
	"github.com/clinch-dev/clinch/internal/domain/models"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// RegistryStore keeps the contract list in a single JSON array file. Every
// call reads or writes the whole file; nothing is cached between calls.
type RegistryStore struct {
	dir string
	log *slog.Logger
}

// NewRegistryStore creates a store rooted at dir (usually <project>/.clinch)
func NewRegistryStore(dir string, log *slog.Logger) *RegistryStore {
	return &RegistryStore{dir: dir, log: log}
}

// NewRegistryStoreFromConfig creates a RegistryStore from RuntimeConfig
func NewRegistryStoreFromConfig(cfg *config.RuntimeConfig, log *slog.Logger) *RegistryStore {
	return NewRegistryStore(cfg.RegistryDir, log)
}

// Path returns the canonical registry file path
func (s *RegistryStore) Path() string {
	return filepath.Join(s.dir, domainconfig.RegistryFile)
}

// Exists reports whether the registry file is present
func (s *RegistryStore) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads the registry. A missing file is an empty registry; an unreadable
// or corrupt file is logged and also treated as empty.
func (s *RegistryStore) Load(ctx context.Context) []*models.Contract {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("failed to read registry, treating as empty", "path", s.Path(), "error", err)
		}
		return []*models.Contract{}
	}

	var contracts []*models.Contract
	if err := json.Unmarshal(data, &contracts); err != nil {
		s.log.Warn("registry file is corrupt, treating as empty", "path", s.Path(), "error", err)
		return []*models.Contract{}
	}

	// Drop null entries so callers never see nil records
	out := make([]*models.Contract, 0, len(contracts))
	for _, c := range contracts {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Save replaces the registry with contracts: the JSON is written to a .tmp
// sibling which is then renamed over the canonical file, so readers see
// either the old or the new registry.
func (s *RegistryStore) Save(ctx context.Context, contracts []*models.Contract) error {
	if contracts == nil {
		contracts = []*models.Contract{}
	}

	data, err := json.MarshalIndent(contracts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create registry directory %s: %w", s.dir, err)
	}

	path := s.Path()
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		s.removeTemp(tmpPath)
		return fmt.Errorf("failed to write registry %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		s.removeTemp(tmpPath)
		return fmt.Errorf("failed to replace registry %s: %w", path, err)
	}

	s.log.Debug("registry saved", "path", path, "contracts", len(contracts))
	return nil
}

func (s *RegistryStore) removeTemp(tmpPath string) {
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Debug("failed to remove temporary registry file", "path", tmpPath, "error", err)
	}
}

var _ usecase.ContractRepository = (*RegistryStore)(nil)
