// Package pkginfo defines the package record shapes consumed by the report
// renderers.
//
// Records are plain data supplied by an external resolver; this package does
// no lookups of its own. All fields are optional with safe zero values: a
// missing field degrades to an omitted decoration, never an error.
package pkginfo

import (
	"github.com/ajxudir/pacreport/pkg/constants"
	"github.com/ajxudir/pacreport/pkg/text"
)

// Origin is a tagged variant describing where a package comes from:
// a configured repository (with a name) or the AUR (no repository metadata).
//
// The zero value is the AUR origin.
type Origin struct {
	repo string
}

// RepoOrigin returns the origin for a package from a named repository.
//
// Parameters:
//   - name: The repository name; empty degrades to the AUR origin
//
// Returns:
//   - Origin: The repository origin
func RepoOrigin(name string) Origin {
	return Origin{repo: name}
}

// AUROrigin returns the origin for a package without repository metadata.
func AUROrigin() Origin {
	return Origin{}
}

// IsAUR reports whether this is the AUR origin.
func (o Origin) IsAUR() bool {
	return o.repo == ""
}

// Repo returns the repository name and whether one is present.
//
// Returns:
//   - string: The repository name, empty for the AUR origin
//   - bool: true when the origin is a repository
func (o Origin) Repo() (string, bool) {
	return o.repo, o.repo != ""
}

// Marker renders the origin as a display prefix: a hash-colorized "repo/"
// for repository origins, or the fixed "aur/" marker otherwise.
//
// Parameters:
//   - styler: The styler to decorate with
//
// Returns:
//   - string: The decorated origin prefix
func (o Origin) Marker(styler *text.Styler) string {
	if name, ok := o.Repo(); ok {
		return text.FormatRepoName(styler, name)
	}
	return styler.Color(constants.AUROriginPrefix, constants.ColorAURPrefix)
}

// Dependency names a package that requires the one being rendered.
type Dependency struct {
	PackageName string `yaml:"package" json:"package"`
}

// Provider names a package (or virtual name) that provides the one being
// rendered.
type Provider struct {
	Name string `yaml:"name" json:"name"`
}

// InstallInfo is one package's pending version change plus relational
// metadata. It is immutable for the duration of a render pass.
//
// At least one of CurrentVersion/NewVersion should be set for records
// entering the formatter; when both are empty the version separator is
// omitted rather than treated as an error.
//
// Fields:
//   - Name: Package name
//   - CurrentVersion: Installed version, empty for new installs
//   - NewVersion: Candidate version, empty for removals
//   - Repository: Origin repository name; empty means AUR origin
//   - RequiredBy: Packages that pulled this one in as a dependency
//   - ProvidedBy: Packages providing this name
//   - MemberOf: Group names this package belongs to
//   - Replaces: Package names this one replaces
//   - Description: One-line package description (verbose mode only)
//   - DevelPkgAgeDays: Age of a development package in days; 0 means absent
type InstallInfo struct {
	Name            string       `yaml:"name" json:"name"`
	CurrentVersion  string       `yaml:"current_version,omitempty" json:"current_version,omitempty"`
	NewVersion      string       `yaml:"new_version,omitempty" json:"new_version,omitempty"`
	Repository      string       `yaml:"repository,omitempty" json:"repository,omitempty"`
	RequiredBy      []Dependency `yaml:"required_by,omitempty" json:"required_by,omitempty"`
	ProvidedBy      []Provider   `yaml:"provided_by,omitempty" json:"provided_by,omitempty"`
	MemberOf        []string     `yaml:"member_of,omitempty" json:"member_of,omitempty"`
	Replaces        []string     `yaml:"replaces,omitempty" json:"replaces,omitempty"`
	Description     string       `yaml:"description,omitempty" json:"description,omitempty"`
	DevelPkgAgeDays int          `yaml:"devel_pkg_age_days,omitempty" json:"devel_pkg_age_days,omitempty"`
}

// Origin returns the package's origin variant derived from its Repository
// field.
func (i InstallInfo) Origin() Origin {
	return RepoOrigin(i.Repository)
}
