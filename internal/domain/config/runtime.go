package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	RegistryDir string // absolute, usually <root>/.clinch
	VaultDir    string // absolute, usually <RegistryDir>/abis

	// Foundry layout
	ArtifactsDir string // absolute, foundry "out" dir
	BroadcastDir string // absolute, foundry "broadcast" dir

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	Format         string // table, json or yaml

	// Git integration
	GitRemote string
}

// RegistryFile is the canonical registry file name inside RegistryDir.
const RegistryFile = "contracts.json"

// VaultSubdir is the vault directory name inside RegistryDir; stored ABI
// references are relative to RegistryDir and start with it.
const VaultSubdir = "abis"
