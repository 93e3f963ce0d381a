package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/clinch-dev/clinch/internal/domain/config"
)

// RuntimeConfig is re-exported so adapters only import this package
type RuntimeConfig = config.RuntimeConfig

// DefaultRegistryDir is the registry directory relative to the project root
const DefaultRegistryDir = ".clinch"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	loadEnvFiles(projectRoot)

	layout, err := LoadFoundryLayout(projectRoot, v.GetString("profile"))
	if err != nil {
		return nil, err
	}

	registryDir := resolvePath(projectRoot, v.GetString("registry_dir"))

	format := strings.ToLower(v.GetString("format"))
	switch format {
	case "", "table":
		format = "table"
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q (valid: table, json, yaml)", format)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		RegistryDir:    registryDir,
		VaultDir:       filepath.Join(registryDir, config.VaultSubdir),
		ArtifactsDir:   layout.ArtifactsDir,
		BroadcastDir:   layout.BroadcastDir,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		Format:         format,
		GitRemote:      v.GetString("git_remote"),
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a registry
// directory or a foundry.toml. Falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, DefaultRegistryDir)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DefaultRegistryDir))

	v.SetEnvPrefix("CLINCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("registry_dir", DefaultRegistryDir)
	v.SetDefault("profile", "default")
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("format", "table")
	v.SetDefault("git_remote", "origin")

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
