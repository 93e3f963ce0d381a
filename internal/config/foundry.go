package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	defaultArtifactsDir = "out"
	defaultBroadcastDir = "broadcast"
)

// FoundryTOML represents the parts of foundry.toml clinch reads
type FoundryTOML struct {
	Profile map[string]FoundryProfile `toml:"profile"`
}

// FoundryProfile is a single [profile.<name>] section
type FoundryProfile struct {
	Out       string `toml:"out"`
	Broadcast string `toml:"broadcast"`
}

// FoundryLayout holds the resolved build-output directories of a project.
type FoundryLayout struct {
	ArtifactsDir string
	BroadcastDir string
}

// loadEnvFiles loads .env files from the project root so that foundry.toml
// values and CLINCH_* variables can reference them.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}

// LoadFoundryLayout reads foundry.toml for the given profile and returns the
// absolute artifact and broadcast directories. A missing foundry.toml yields
// Foundry's defaults.
func LoadFoundryLayout(projectRoot, profile string) (*FoundryLayout, error) {
	layout := &FoundryLayout{
		ArtifactsDir: filepath.Join(projectRoot, defaultArtifactsDir),
		BroadcastDir: filepath.Join(projectRoot, defaultBroadcastDir),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return layout, nil
	}

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	// Profiles inherit from default the way forge does
	merged := raw.Profile["default"]
	if p, ok := raw.Profile[profile]; ok && profile != "default" {
		if p.Out != "" {
			merged.Out = p.Out
		}
		if p.Broadcast != "" {
			merged.Broadcast = p.Broadcast
		}
	}

	if merged.Out != "" {
		layout.ArtifactsDir = resolvePath(projectRoot, os.ExpandEnv(merged.Out))
	}
	if merged.Broadcast != "" {
		layout.BroadcastDir = resolvePath(projectRoot, os.ExpandEnv(merged.Broadcast))
	}

	return layout, nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
