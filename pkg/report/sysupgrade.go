// Package report composes categorized update records into the full
// sysupgrade report.
//
// Categories are built fresh per invocation from the caller's resolved
// upgrade data, never mutated, and discarded after rendering. The emission
// order is fixed regardless of the order categories are supplied in.
package report

import (
	"strings"

	"github.com/ajxudir/pacreport/pkg/constants"
	"github.com/ajxudir/pacreport/pkg/i18n"
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/text"
	"github.com/ajxudir/pacreport/pkg/upgrade"
)

// CategoryKind names one of the report's fixed categories.
type CategoryKind int

const (
	// RepoReplacement holds repository packages suggested as replacements.
	RepoReplacement CategoryKind = iota

	// ThirdPartyReplacement holds third-party repository replacements.
	ThirdPartyReplacement

	// RepoUpdate holds regular repository package updates.
	RepoUpdate

	// RepoNewDep holds new dependencies pulled from repositories.
	RepoNewDep

	// ThirdPartyUpdate holds third-party repository package updates.
	ThirdPartyUpdate

	// ThirdPartyNewDep holds new dependencies from third-party repositories.
	ThirdPartyNewDep

	// AURUpdate holds AUR package updates.
	AURUpdate

	// AURNewDep holds new dependencies built from the AUR.
	AURNewDep
)

// originPolicy controls whether a category's lines carry origin prefixes.
type originPolicy int

const (
	originFromConfig originPolicy = iota
	originAlways
	originNever
)

// kindMeta describes the fixed per-category rendering rules.
type kindMeta struct {
	tag         string
	singular    string
	plural      string
	bulletColor int
	newDep      bool
	origin      originPolicy
}

// emissionOrder is the fixed category order of the report.
var emissionOrder = []CategoryKind{
	RepoReplacement,
	ThirdPartyReplacement,
	RepoUpdate,
	RepoNewDep,
	ThirdPartyUpdate,
	ThirdPartyNewDep,
	AURUpdate,
	AURNewDep,
}

var kindMetas = map[CategoryKind]kindMeta{
	RepoReplacement: {
		tag:         "repo-replacement",
		singular:    "Repository package suggested as a replacement:",
		plural:      "Repository packages suggested as a replacement:",
		bulletColor: constants.ColorHeaderUpdate,
	},
	ThirdPartyReplacement: {
		tag:         "thirdparty-replacement",
		singular:    "Third-party repository package suggested as a replacement:",
		plural:      "Third-party repository packages suggested as a replacement:",
		bulletColor: constants.ColorHeaderUpdate,
	},
	RepoUpdate: {
		tag:         "repo-update",
		singular:    "Repository package will be installed:",
		plural:      "Repository packages will be installed:",
		bulletColor: constants.ColorHeaderUpdate,
	},
	RepoNewDep: {
		tag:         "repo-new-dep",
		singular:    "New dependency will be installed from repository:",
		plural:      "New dependencies will be installed from repository:",
		bulletColor: constants.ColorHeaderNewDep,
		newDep:      true,
	},
	ThirdPartyUpdate: {
		tag:         "thirdparty-update",
		singular:    "Third-party repository package will be installed:",
		plural:      "Third-party repository packages will be installed:",
		bulletColor: constants.ColorHeaderUpdate,
		origin:      originAlways,
	},
	ThirdPartyNewDep: {
		tag:         "thirdparty-new-dep",
		singular:    "New dependency will be installed from third-party repository:",
		plural:      "New dependencies will be installed from third-party repository:",
		bulletColor: constants.ColorHeaderNewDep,
		newDep:      true,
	},
	AURUpdate: {
		tag:         "aur-update",
		singular:    "AUR package will be installed:",
		plural:      "AUR packages will be installed:",
		bulletColor: constants.ColorHeaderAUR,
		origin:      originNever,
	},
	AURNewDep: {
		tag:         "aur-new-dep",
		singular:    "New dependency will be installed from AUR:",
		plural:      "New dependencies will be installed from AUR:",
		bulletColor: constants.ColorHeaderNewDep,
		newDep:      true,
		origin:      originNever,
	},
}

// Tag returns the category's stable name tag ("repo-update", "aur-new-dep", ...).
func (k CategoryKind) Tag() string {
	return kindMetas[k].tag
}

// ParseCategoryKind parses a category name tag.
//
// Parameters:
//   - tag: A category name tag such as "repo-update"
//
// Returns:
//   - CategoryKind: The matching kind
//   - bool: false when the tag is unknown
func ParseCategoryKind(tag string) (CategoryKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	for kind, meta := range kindMetas {
		if meta.tag == normalized {
			return kind, true
		}
	}
	return 0, false
}

// Category is one named group of update records in the composite report.
type Category struct {
	Kind    CategoryKind
	Records []pkginfo.InstallInfo
}

// Options configures one report build.
//
// Fields:
//   - Styler: Decoration capability; nil means no color
//   - Verbose: Append wrapped descriptions after each line
//   - ManualSelection: Disables color for the whole report and omits all
//     new-dependency categories (the caller already let the user choose, so
//     auto-resolved dependencies would mislead)
//   - AlwaysShowOrigin: Show origin prefixes on categories that leave the
//     choice to configuration
//   - TerminalWidth: Terminal width in columns; <= 0 is clamped
//   - SortMode: Line order within each category
//   - Template: Optional terse line template replacing the column layout
//   - VersionColor, OldColor, NewColor: Version highlight palette indices
type Options struct {
	Styler           *text.Styler
	Verbose          bool
	ManualSelection  bool
	AlwaysShowOrigin bool
	TerminalWidth    int
	SortMode         upgrade.SortMode
	Template         string
	VersionColor     int
	OldColor         int
	NewColor         int
}

// Build composes the categorized records into the full sysupgrade report.
//
// It performs the following operations:
//   - Step 1: Groups the supplied categories by kind (multiple entries of
//     the same kind are concatenated in input order)
//   - Step 2: Walks the fixed emission order, skipping empty categories and,
//     in manual-selection mode, every new-dependency category
//   - Step 3: Emits a pluralized, bulleted header plus the rendered record
//     block for each remaining category
//
// Parameters:
//   - categories: The categorized update records, any order
//   - opts: The report configuration
//
// Returns:
//   - string: The composed report, ending with a trailing newline; a report
//     with no emitted categories is empty
func Build(categories []Category, opts Options) string {
	styler := opts.Styler
	if styler == nil || opts.ManualSelection {
		styler = text.NewStyler(false)
	}

	grouped := make(map[CategoryKind][]pkginfo.InstallInfo)
	for _, category := range categories {
		grouped[category.Kind] = append(grouped[category.Kind], category.Records...)
	}

	var blocks []string
	for _, kind := range emissionOrder {
		meta := kindMetas[kind]
		records := grouped[kind]
		if len(records) == 0 {
			continue
		}
		if opts.ManualSelection && meta.newDep {
			continue
		}

		header := "\n" + styler.Color(constants.HeaderBullet, meta.bulletColor) + " " +
			styler.Bold(i18n.TN(meta.singular, meta.plural, len(records)))
		blocks = append(blocks, header)

		showRepo := opts.AlwaysShowOrigin
		switch meta.origin {
		case originAlways:
			showRepo = true
		case originNever:
			showRepo = false
		}

		blocks = append(blocks, upgrade.Render(records, upgrade.Style{
			Styler:        styler,
			ShowRepo:      showRepo,
			Verbose:       opts.Verbose,
			TerminalWidth: opts.TerminalWidth,
			SortMode:      opts.SortMode,
			Template:      opts.Template,
			VersionColor:  opts.VersionColor,
			OldColor:      opts.OldColor,
			NewColor:      opts.NewColor,
		}))
	}

	blocks = append(blocks, "")
	return strings.Join(blocks, "\n")
}
