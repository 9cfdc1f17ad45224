// Package search renders repository and AUR search results ranked by
// relevance.
//
// Rendering produces a lazy, finite sequence of output lines. The sequence
// is single-use: callers traverse it once and write the lines to their
// destination.
package search

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"

	"github.com/ajxudir/pacreport/pkg/constants"
	"github.com/ajxudir/pacreport/pkg/i18n"
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/text"
)

// Record is one search result from either a configured repository or the AUR.
//
// NumVotes, Popularity and OutOfDate are pointers because absence carries
// meaning: records lacking vote metrics rank with a neutral relevance key,
// and only records with an out-of-date timestamp get the outdated
// annotation.
type Record struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Repository  string   `yaml:"repository,omitempty" json:"repository,omitempty"`
	Groups      []string `yaml:"groups,omitempty" json:"groups,omitempty"`
	NumVotes    *int     `yaml:"num_votes,omitempty" json:"num_votes,omitempty"`
	Popularity  *float64 `yaml:"popularity,omitempty" json:"popularity,omitempty"`
	OutOfDate   *int64   `yaml:"out_of_date,omitempty" json:"out_of_date,omitempty"`
}

// Origin returns the record's origin variant derived from its Repository field.
func (r Record) Origin() pkginfo.Origin {
	return pkginfo.RepoOrigin(r.Repository)
}

// relevance returns the sort key for a record.
//
// AUR records carrying both vote metrics rank by (votes+1)*(popularity+1);
// repository records and AUR records lacking either metric get a fixed
// neutral key of 1 and keep their relative input order.
func (r Record) relevance() float64 {
	if r.Origin().IsAUR() && r.NumVotes != nil && r.Popularity != nil {
		return float64(*r.NumVotes+1) * (*r.Popularity + 1)
	}
	return 1
}

// Options configures one search render.
//
// Fields:
//   - Styler: Decoration capability; nil means no color
//   - Quiet: Emit only bare package names
//   - Enumerated: Prefix each result with its position
//   - EnumerateFrom: First enumeration value (typically 1)
//   - TerminalWidth: Terminal width for description wrapping; <= 0 is clamped
//   - VersionColor: Palette index for versions
//   - OutdatedColor: Palette index for out-of-date versions
type Options struct {
	Styler        *text.Styler
	Quiet         bool
	Enumerated    bool
	EnumerateFrom int
	TerminalWidth int
	VersionColor  int
	OutdatedColor int
}

// Render produces the output lines for a set of search results.
//
// It performs the following operations:
//   - Step 1: Stable-sorts a copy of the records by relevance, descending
//   - Step 2: Yields one line per record in quiet mode (the bare name)
//   - Step 3: Otherwise yields the decorated result line followed by the
//     wrapped description line
//
// The returned sequence is finite and meant for a single traversal.
//
// Parameters:
//   - records: The search results, mixed repository and AUR origin
//   - installedVersions: Read-only name-to-version mapping of installed
//     packages, queried by exact name at render time
//   - opts: The render configuration
//
// Returns:
//   - iter.Seq[string]: The output lines, in final display order
func Render(records []Record, installedVersions map[string]string, opts Options) iter.Seq[string] {
	styler := opts.Styler
	if styler == nil {
		styler = text.NewStyler(false)
	}
	termWidth := text.ClampWidth(opts.TerminalWidth)

	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].relevance() > ranked[j].relevance()
	})

	return func(yield func(string) bool) {
		for idx, record := range ranked {
			if opts.Quiet {
				if !yield(record.Name) {
					return
				}
				continue
			}

			if !yield(formatResult(record, idx, installedVersions, styler, opts)) {
				return
			}
			if !yield(text.FormatParagraph(record.Description, termWidth)) {
				return
			}
		}
	}
}

// formatResult renders one non-quiet result line.
func formatResult(record Record, idx int, installedVersions map[string]string, styler *text.Styler, opts Options) string {
	enumeration := ""
	if opts.Enumerated {
		enumeration = styler.Bold(fmt.Sprintf("%d) ", idx+opts.EnumerateFrom))
	}

	origin := record.Origin().Marker(styler)
	name := styler.Bold(record.Name)

	versionColor := opts.VersionColor
	versionText := record.Version
	if record.OutOfDate != nil {
		versionColor = opts.OutdatedColor
		versionText = fmt.Sprintf("%s [%s: %s]",
			record.Version,
			i18n.T("out-of-date"),
			time.Unix(*record.OutOfDate, 0).Format("2006/01/02"),
		)
	}
	version := styler.Color(versionText, versionColor)

	groups := ""
	if len(record.Groups) > 0 {
		groups = styler.Color("("+strings.Join(record.Groups, " ")+") ", constants.ColorGroup)
	}

	installed := ""
	if installedVersion, ok := installedVersions[record.Name]; ok {
		if installedVersion != record.Version {
			installed = styler.Color(
				fmt.Sprintf(i18n.T("[installed: %s]"), installedVersion)+" ",
				constants.ColorReplacements,
			)
		} else {
			installed = styler.Color(i18n.T("[installed]")+" ", constants.ColorReplacements)
		}
	}

	rating := ""
	if record.NumVotes != nil && record.Popularity != nil {
		rating = styler.Color(
			fmt.Sprintf("(%d, %.2f)", *record.NumVotes, *record.Popularity),
			constants.ColorDependency,
		)
	}

	return enumeration + origin + name + " " + version + " " + groups + installed + rating
}
