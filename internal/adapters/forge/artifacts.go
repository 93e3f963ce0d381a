package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/clinch-dev/clinch/internal/config"
	"github.com/clinch-dev/clinch/internal/domain/models"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// ArtifactLocator finds compiled ABIs in Foundry's build output.
type ArtifactLocator struct {
	outDir string
	log    *slog.Logger
}

// NewArtifactLocator creates a locator reading from outDir
func NewArtifactLocator(outDir string, log *slog.Logger) *ArtifactLocator {
	return &ArtifactLocator{outDir: outDir, log: log}
}

// NewArtifactLocatorFromConfig creates an ArtifactLocator from RuntimeConfig
func NewArtifactLocatorFromConfig(cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactLocator {
	return NewArtifactLocator(cfg.ArtifactsDir, log)
}

// ArtifactPath returns <out>/<Name>.sol/<Name>.json
func (l *ArtifactLocator) ArtifactPath(contractName string) string {
	return filepath.Join(l.outDir, contractName+".sol", contractName+".json")
}

// FindABI returns the pretty-printed abi array of the named contract's
// artifact. A missing or malformed artifact is logged and reported as ok=false.
func (l *ArtifactLocator) FindABI(ctx context.Context, contractName string) ([]byte, bool) {
	path := l.ArtifactPath(contractName)

	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Warn("could not find artifact", "contract", contractName, "path", path)
		return nil, false
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		l.log.Warn("artifact is not valid JSON", "contract", contractName, "path", path, "error", err)
		return nil, false
	}
	if len(artifact.ABI) == 0 || string(artifact.ABI) == "null" {
		l.log.Warn("artifact has no abi field", "contract", contractName, "path", path)
		return nil, false
	}

	if _, err := abi.JSON(bytes.NewReader(artifact.ABI)); err != nil {
		l.log.Warn("artifact abi does not parse", "contract", contractName, "path", path, "error", err)
		return nil, false
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, artifact.ABI, "", "  "); err != nil {
		return nil, false
	}
	return pretty.Bytes(), true
}

// SummarizeABI counts the functions and events of an ABI document. It accepts
// either a bare ABI array or a full artifact with an abi field.
func SummarizeABI(data []byte) (*usecase.ABISummary, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '{' {
		var artifact models.Artifact
		if err := json.Unmarshal(raw, &artifact); err != nil {
			return nil, fmt.Errorf("failed to decode artifact: %w", err)
		}
		raw = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	summary := &usecase.ABISummary{
		Functions:      len(parsed.Methods),
		Events:         len(parsed.Events),
		Errors:         len(parsed.Errors),
		HasConstructor: len(parsed.Constructor.Inputs) > 0,
	}
	for name := range parsed.Methods {
		summary.FunctionNames = append(summary.FunctionNames, name)
	}
	sort.Strings(summary.FunctionNames)
	return summary, nil
}

var _ usecase.ArtifactLocator = (*ArtifactLocator)(nil)
