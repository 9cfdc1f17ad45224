package testutil

import (
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/search"
)

// InstallInfoBuilder provides a fluent API for building test update records.
//
// Use this builder to construct InstallInfo objects for testing purposes
// without needing to set all fields manually.
type InstallInfoBuilder struct {
	info pkginfo.InstallInfo
}

// NewInstallInfo creates a new InstallInfoBuilder with the given name.
//
// Parameters:
//   - name: Package name to set
//
// Returns:
//   - *InstallInfoBuilder: New builder instance ready for method chaining
func NewInstallInfo(name string) *InstallInfoBuilder {
	return &InstallInfoBuilder{
		info: pkginfo.InstallInfo{
			Name: name,
		},
	}
}

// WithVersions sets the current and new versions.
//
// Parameters:
//   - current: Installed version, may be empty
//   - new: Candidate version, may be empty
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithVersions(current, new string) *InstallInfoBuilder {
	b.info.CurrentVersion = current
	b.info.NewVersion = new
	return b
}

// WithRepository sets the origin repository.
//
// Parameters:
//   - repo: Repository name; empty means AUR origin
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithRepository(repo string) *InstallInfoBuilder {
	b.info.Repository = repo
	return b
}

// WithRequiredBy sets the required-by package names.
//
// Parameters:
//   - names: Names of packages that require this one
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithRequiredBy(names ...string) *InstallInfoBuilder {
	deps := make([]pkginfo.Dependency, len(names))
	for i, name := range names {
		deps[i] = pkginfo.Dependency{PackageName: name}
	}
	b.info.RequiredBy = deps
	return b
}

// WithProvidedBy sets the provided-by names.
//
// Parameters:
//   - names: Provider names
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithProvidedBy(names ...string) *InstallInfoBuilder {
	providers := make([]pkginfo.Provider, len(names))
	for i, name := range names {
		providers[i] = pkginfo.Provider{Name: name}
	}
	b.info.ProvidedBy = providers
	return b
}

// WithGroups sets the group memberships.
//
// Parameters:
//   - groups: Group names
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithGroups(groups ...string) *InstallInfoBuilder {
	b.info.MemberOf = groups
	return b
}

// WithReplaces sets the replaced package names.
//
// Parameters:
//   - names: Names of packages this one replaces
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithReplaces(names ...string) *InstallInfoBuilder {
	b.info.Replaces = names
	return b
}

// WithDescription sets the package description.
//
// Parameters:
//   - desc: One-line description
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithDescription(desc string) *InstallInfoBuilder {
	b.info.Description = desc
	return b
}

// WithDevelAge sets the development package age in days.
//
// Parameters:
//   - days: Age in days
//
// Returns:
//   - *InstallInfoBuilder: Self for method chaining
func (b *InstallInfoBuilder) WithDevelAge(days int) *InstallInfoBuilder {
	b.info.DevelPkgAgeDays = days
	return b
}

// Build returns the constructed record.
//
// Returns:
//   - pkginfo.InstallInfo: The record with all configured fields
func (b *InstallInfoBuilder) Build() pkginfo.InstallInfo {
	return b.info
}

// SearchRecord constructs a search result for tests.
//
// Parameters:
//   - name: Package name
//   - version: Package version
//   - repo: Repository name; empty means AUR origin
//
// Returns:
//   - search.Record: The record
func SearchRecord(name, version, repo string) search.Record {
	return search.Record{
		Name:       name,
		Version:    version,
		Repository: repo,
	}
}

// AURSearchRecord constructs an AUR search result with vote metrics.
//
// Parameters:
//   - name: Package name
//   - version: Package version
//   - votes: Vote count
//   - popularity: Popularity score
//
// Returns:
//   - search.Record: The record with both relevance metrics set
func AURSearchRecord(name, version string, votes int, popularity float64) search.Record {
	return search.Record{
		Name:       name,
		Version:    version,
		NumVotes:   &votes,
		Popularity: &popularity,
	}
}
