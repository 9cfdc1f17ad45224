package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pacreport/pkg/verbose"
	"github.com/ajxudir/pacreport/pkg/warnings"
)

// DefaultConfigFileName is the config file discovered in the working directory.
const DefaultConfigFileName = ".pacreport.yml"

// maxConfigFileSize bounds config reads to keep a corrupt or hostile file
// from exhausting memory.
const maxConfigFileSize = 1 << 20

// LoadConfig loads configuration from the specified path or defaults.
//
// It performs the following operations:
//   - Step 1: When configPath is set, loads exactly that file
//   - Step 2: Otherwise looks for .pacreport.yml in the working directory
//   - Step 3: Falls back to the built-in defaults when no file is found
//   - Step 4: Fills unset color indices and sorting from the defaults, so a
//     partial file never zeroes the palette
//
// Parameters:
//   - configPath: Path to a config file, or empty to discover one
//   - workDir: Working directory for config discovery; empty means "."
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: Any read or parse error for an explicitly requested file
func LoadConfig(configPath, workDir string) (*Config, error) {
	if workDir == "" {
		workDir = "."
	}

	if configPath != "" {
		verbose.Printf("Loading config from: %s", configPath)
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		applyDefaults(cfg)
		return cfg, nil
	}

	localConfig := filepath.Join(workDir, DefaultConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		verbose.Printf("Found local config: %s", localConfig)
		cfg, err := loadConfigFile(localConfig)
		if err == nil {
			applyDefaults(cfg)
			return cfg, nil
		}
		warnings.Warnf("Warning: ignoring unreadable config %s: %v\n", localConfig, err)
	}

	verbose.Printf("Using built-in default configuration")
	return DefaultConfig(), nil
}

// loadConfigFile reads and parses one YAML config file.
//
// Parameters:
//   - path: Path to the config file
//
// Returns:
//   - *Config: The parsed configuration
//   - error: When the file is too large, unreadable or not valid YAML
func loadConfigFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)",
			info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills unset fields from the built-in defaults.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Colors.Version == 0 {
		cfg.Colors.Version = defaults.Colors.Version
	}
	if cfg.Colors.VersionDiffOld == 0 {
		cfg.Colors.VersionDiffOld = defaults.Colors.VersionDiffOld
	}
	if cfg.Colors.VersionDiffNew == 0 {
		cfg.Colors.VersionDiffNew = defaults.Colors.VersionDiffNew
	}
	if cfg.Sync.UpgradeSorting == "" {
		cfg.Sync.UpgradeSorting = defaults.Sync.UpgradeSorting
	}
	if cfg.UI.Color == "" {
		cfg.UI.Color = defaults.UI.Color
	}
}
