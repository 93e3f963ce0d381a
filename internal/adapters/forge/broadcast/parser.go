package broadcast

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clinch-dev/clinch/internal/config"
	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// LatestFile is the name forge gives the most recent run of a script
const LatestFile = "run-latest.json"

// Parser handles parsing of Foundry broadcast files
type Parser struct {
	broadcastDir string
}

// NewParser creates a new broadcast file parser
func NewParser(broadcastDir string) *Parser {
	return &Parser{
		broadcastDir: broadcastDir,
	}
}

// NewParserFromConfig creates a Parser from RuntimeConfig
func NewParserFromConfig(cfg *config.RuntimeConfig) *Parser {
	return NewParser(cfg.BroadcastDir)
}

// ParseBroadcastFile parses a broadcast file
func (p *Parser) ParseBroadcastFile(file string) (*domain.BroadcastFile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read broadcast file: %w", err)
	}

	var broadcast domain.BroadcastFile
	if err := json.Unmarshal(data, &broadcast); err != nil {
		return nil, fmt.Errorf("failed to parse broadcast file: %w", err)
	}

	return &broadcast, nil
}

// FindLatest returns the most recently written broadcast/<script>/<chain>/run-latest.json.
func (p *Parser) FindLatest() (string, error) {
	if _, err := os.Stat(p.broadcastDir); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: no broadcast directory at %s", domain.ErrNoBroadcast, p.broadcastDir)
	}

	files, err := filepath.Glob(filepath.Join(p.broadcastDir, "*", "*", LatestFile))
	if err != nil {
		return "", fmt.Errorf("failed to list broadcast files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %s contains no %s", domain.ErrNoBroadcast, p.broadcastDir, LatestFile)
	}

	latest := ""
	var latestMod int64
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		mod := info.ModTime().UnixNano()
		// Ties resolve to the lexically last path, so the choice is stable
		if latest == "" || mod > latestMod || (mod == latestMod && f > latest) {
			latest = f
			latestMod = mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: broadcast files under %s are unreadable", domain.ErrNoBroadcast, p.broadcastDir)
	}
	return latest, nil
}

var _ usecase.TranscriptParser = (*Parser)(nil)
