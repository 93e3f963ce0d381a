package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/clinch-dev/clinch/internal/config"
	domainconfig "github.com/clinch-dev/clinch/internal/domain/config"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// addressPrefixLen is how much of the lower-cased address goes into a vault
// file name ("0x" plus four hex characters).
const addressPrefixLen = 6

// ABIVault copies interface definitions into <registry>/abis. References it
// hands out are relative to the registry directory, e.g. abis/Token-0xab12.json.
type ABIVault struct {
	registryDir string
	projectRoot string
	log         *slog.Logger
}

// NewABIVault creates a new vault rooted at registryDir
func NewABIVault(registryDir, projectRoot string, log *slog.Logger) *ABIVault {
	return &ABIVault{registryDir: registryDir, projectRoot: projectRoot, log: log}
}

// NewABIVaultFromConfig creates an ABIVault from RuntimeConfig
func NewABIVaultFromConfig(cfg *config.RuntimeConfig, log *slog.Logger) *ABIVault {
	return NewABIVault(cfg.RegistryDir, cfg.ProjectRoot, log)
}

// FileName derives the vault file name for a contract.
func FileName(name, address string) string {
	prefix := strings.ToLower(strings.TrimSpace(address))
	if len(prefix) > addressPrefixLen {
		prefix = prefix[:addressPrefixLen]
	}
	return fmt.Sprintf("%s-%s.json", strings.TrimSpace(name), prefix)
}

// Reference returns the registry-relative reference for a contract's ABI.
func Reference(name, address string) string {
	return domainconfig.VaultSubdir + "/" + FileName(name, address)
}

// Capture copies the file at sourcePath into the vault. Failures are logged
// and reported as ok=false; callers carry on without an ABI.
func (v *ABIVault) Capture(ctx context.Context, sourcePath, name, address string) (string, bool) {
	src := sourcePath
	if !filepath.IsAbs(src) {
		src = filepath.Join(v.projectRoot, src)
	}

	ref := Reference(name, address)
	if err := v.copyFile(src, v.abs(ref)); err != nil {
		switch {
		case errors.Is(err, iofs.ErrNotExist):
			v.log.Warn("ABI file not found, continuing without ABI", "path", sourcePath)
		case errors.Is(err, iofs.ErrPermission):
			v.log.Warn("permission denied reading ABI, continuing without ABI", "path", sourcePath)
		default:
			v.log.Warn("failed to capture ABI, continuing without ABI", "path", sourcePath, "error", err)
		}
		return "", false
	}

	v.log.Debug("ABI captured", "source", src, "ref", ref)
	return ref, true
}

// Store writes ABI bytes (already extracted from an artifact) into the vault.
func (v *ABIVault) Store(ctx context.Context, name, address string, data []byte) (string, error) {
	ref := Reference(name, address)
	dst := v.abs(ref)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create vault directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return ref, nil
}

// Read returns the stored ABI for a registry-relative reference.
func (v *ABIVault) Read(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty ABI reference")
	}
	data, err := os.ReadFile(v.abs(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI %s: %w", ref, err)
	}
	return data, nil
}

// Remove deletes a vault file. It never fails: a missing or undeletable file
// is only logged.
func (v *ABIVault) Remove(ctx context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	if err := os.Remove(v.abs(ref)); err != nil {
		v.log.Info("could not delete ABI file (it may have been moved or already deleted)", "ref", ref, "error", err)
		return false
	}
	v.log.Debug("ABI file removed", "ref", ref)
	return true
}

// abs resolves a reference inside the registry directory. References that
// try to climb out of it are pinned to their base name.
func (v *ABIVault) abs(ref string) string {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		clean = filepath.Join(domainconfig.VaultSubdir, filepath.Base(clean))
	}
	return filepath.Join(v.registryDir, clean)
}

func (v *ABIVault) copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

var _ usecase.ABIVault = (*ABIVault)(nil)
