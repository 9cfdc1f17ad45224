// Package config handles configuration loading and defaults for pacreport.
// Configuration is YAML-based: an explicit path, a .pacreport.yml in the
// working directory, or built-in defaults.
package config

// Config is the root configuration structure.
type Config struct {
	Colors ColorsCfg `yaml:"colors,omitempty"`
	Sync   SyncCfg   `yaml:"sync,omitempty"`
	UI     UICfg     `yaml:"ui,omitempty"`
}

// ColorsCfg holds the named color-index assignments for version highlighting.
//
// Indices are ANSI-256 palette positions. The shared version prefix renders
// in Version; the changed tail of the current version in VersionDiffOld and
// of the new version in VersionDiffNew.
type ColorsCfg struct {
	Version        int `yaml:"version"`
	VersionDiffOld int `yaml:"version_diff_old"`
	VersionDiffNew int `yaml:"version_diff_new"`
}

// SyncCfg holds upgrade-report behavior knobs.
type SyncCfg struct {
	// UpgradeSorting selects the report line order: "versiondiff" (default,
	// largest version change first), "pkgname" or "repo".
	UpgradeSorting string `yaml:"upgrade_sorting,omitempty"`

	// AlwaysShowPkgOrigin prefixes every report line with its origin
	// repository, not just the categories that force it.
	AlwaysShowPkgOrigin bool `yaml:"always_show_pkg_origin,omitempty"`
}

// UICfg holds terminal presentation knobs.
type UICfg struct {
	// Width overrides the detected terminal width when positive.
	Width int `yaml:"width,omitempty"`

	// Color controls decoration: "auto" (default), "always" or "never".
	Color string `yaml:"color,omitempty"`
}

// DefaultConfig returns the built-in configuration.
//
// Returns:
//   - *Config: A fresh config with the default palette and sorting
func DefaultConfig() *Config {
	return &Config{
		Colors: ColorsCfg{
			Version:        10,
			VersionDiffOld: 11,
			VersionDiffNew: 9,
		},
		Sync: SyncCfg{
			UpgradeSorting: "versiondiff",
		},
		UI: UICfg{
			Color: "auto",
		},
	}
}

// ColorEnabled resolves the UI color knob against the output terminal.
//
// Parameters:
//   - isTerminal: Whether output goes to a color-capable terminal
//
// Returns:
//   - bool: Whether decoration should be applied
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.UI.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}
