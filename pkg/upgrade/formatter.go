// Package upgrade renders package update records as aligned, optionally
// colorized report lines.
//
// The formatter is purely functional over its inputs: records in, text out,
// no retained state. Style carries everything that varies per render call
// (styler, widths, sort mode, color indices), so concurrent renders with
// independent styles are safe.
package upgrade

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ajxudir/pacreport/pkg/constants"
	"github.com/ajxudir/pacreport/pkg/i18n"
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/text"
	"github.com/ajxudir/pacreport/pkg/version"
)

// SortMode selects the comparator used to order rendered lines.
type SortMode int

const (
	// SortDiffWeight orders by version-diff weight descending (largest
	// change first), ties broken alphabetically by name. This is the default.
	SortDiffWeight SortMode = iota

	// SortName orders lexicographically by package name.
	SortName

	// SortRepo orders by repository name, then package name.
	SortRepo
)

// ParseSortMode parses a configuration value into a SortMode.
//
// Recognized values are "pkgname" and "repo"; anything else falls back to
// the diff-weight default.
//
// Parameters:
//   - s: The configuration value
//
// Returns:
//   - SortMode: The parsed sort mode
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pkgname":
		return SortName
	case "repo":
		return SortRepo
	default:
		return SortDiffWeight
	}
}

// Style configures one render call.
//
// A Style is read once per call and never cached across calls, since the
// terminal width can change between invocations.
//
// Fields:
//   - Styler: Decoration capability; nil means no color
//   - ShowRepo: Prefix names with their origin marker
//   - Verbose: Append the wrapped description after each line
//   - TerminalWidth: Terminal width in columns; <= 0 is clamped to a default
//   - SortMode: Comparator for Render
//   - Template: Optional terse line template with named placeholders;
//     when set, all spacing and column logic is skipped
//   - VersionColor: Palette index for the shared version prefix
//   - OldColor: Palette index for the changed tail of the current version
//   - NewColor: Palette index for the changed tail of the new version
type Style struct {
	Styler        *text.Styler
	ShowRepo      bool
	Verbose       bool
	TerminalWidth int
	SortMode      SortMode
	Template      string
	VersionColor  int
	OldColor      int
	NewColor      int
}

// styler returns the decoration capability, defaulting to no color.
func (s Style) styler() *text.Styler {
	if s.Styler != nil {
		return s.Styler
	}
	return text.NewStyler(false)
}

// templatePattern matches {placeholder} tokens in a line template.
var templatePattern = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// templatePlaceholders are the names a line template may reference.
var templatePlaceholders = map[string]bool{
	"pkgName":        true,
	"currentVersion": true,
	"newVersion":     true,
	"daysOld":        true,
}

// ValidateTemplate checks that every placeholder in a line template is known.
//
// Call sites should validate templates before rendering so a typo surfaces
// as an error rather than a literal "{pkgNmae}" in the output.
//
// Parameters:
//   - template: The line template to check
//
// Returns:
//   - error: Names the first unknown placeholder, or nil
func ValidateTemplate(template string) error {
	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		if !templatePlaceholders[match[1]] {
			return fmt.Errorf("unknown template placeholder {%s}", match[1])
		}
	}
	return nil
}

// expandTemplate substitutes placeholder values into a line template.
// Unknown placeholders are left literal; validation is the caller's job.
func expandTemplate(template string, values map[string]string) string {
	return templatePattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		if value, ok := values[name]; ok {
			return value
		}
		return token
	})
}

// Format renders one package update as a line plus its sort key.
//
// It performs the following operations:
//   - Step 1: Computes the shared version prefix and diff weight
//   - Step 2: Builds the decorated display name with origin prefix and
//     required-by / provided-by / group / replaces annotations
//   - Step 3: Renders both versions with the shared prefix and changed tail
//     in separate colors
//   - Step 4: Computes column spacing from the visible name width (escape
//     sequences excluded), flooring every gap at one space
//   - Step 5: Builds the sort key for the configured sort mode
//
// When style.Template is set, steps 4's column logic is skipped and the
// template's named placeholders are substituted instead.
//
// Parameters:
//   - info: The update record to render
//   - style: The render configuration
//
// Returns:
//   - string: The rendered line (possibly multi-line in verbose mode)
//   - string: The sort key for this record under style.SortMode
func Format(info pkginfo.InstallInfo, style Style) (string, string) {
	styler := style.styler()
	shared, weight := version.CommonPrefix(info.CurrentVersion, info.NewVersion)

	termWidth := text.ClampWidth(style.TerminalWidth)
	columnWidth := int(float64(termWidth) / constants.NameColumnDivisor)
	if columnWidth > constants.NameColumnCap {
		columnWidth = constants.NameColumnCap
	}

	sortKey := info.Name
	switch style.SortMode {
	case SortRepo:
		sortKey = info.Repository + info.Name
	case SortName:
		// Name alone.
	default:
		sortKey = fmt.Sprintf("%04d%s", constants.MaxDiffWeight-weight, info.Name)
	}

	daysOld := ""
	if info.DevelPkgAgeDays > 0 {
		daysOld = " " + fmt.Sprintf(i18n.T("(%d days old)"), info.DevelPkgAgeDays)
	}

	pkgName := styler.Bold(info.Name)
	if (style.ShowRepo || style.Verbose) && info.Repository != "" {
		pkgName = info.Origin().Marker(styler) + pkgName
	} else if style.ShowRepo {
		pkgName = pkginfo.AUROrigin().Marker(styler) + pkgName
	}

	if len(info.RequiredBy) > 0 {
		names := make([]string, len(info.RequiredBy))
		for i, dep := range info.RequiredBy {
			names[i] = styler.Color(dep.PackageName, constants.ColorDependency+constants.BrightColorOffset)
		}
		joined := strings.Join(names, styler.Color(", ", constants.ColorDependency))
		pkgName += styler.Color(" (", constants.ColorDependency) +
			fmt.Sprintf(i18n.T("for %s"), joined) +
			styler.Color(")", constants.ColorDependency)
	}

	if len(info.ProvidedBy) > 0 {
		names := make([]string, len(info.ProvidedBy))
		for i, p := range info.ProvidedBy {
			names[i] = p.Name
		}
		pkgName += styler.Color(" ("+strings.Join(names, " # ")+")", constants.ColorProvided)
	}

	if len(info.MemberOf) > 0 {
		names := make([]string, len(info.MemberOf))
		for i, g := range info.MemberOf {
			names[i] = styler.Color(g, constants.ColorGroup+constants.BrightColorOffset)
		}
		joined := strings.Join(names, styler.Color(", ", constants.ColorGroup))
		label := fmt.Sprintf(
			i18n.TN("%s group", "%s groups", len(info.MemberOf)),
			joined,
		)
		pkgName += styler.Color(" (", constants.ColorGroup) + label +
			styler.Color(")", constants.ColorGroup)
	}

	if len(info.Replaces) > 0 {
		label := fmt.Sprintf(i18n.T("replaces %s"), strings.Join(info.Replaces, ", "))
		pkgName += styler.Color(" ("+label+")", constants.ColorReplacements)
		if !styler.Enabled() {
			pkgName = "# " + pkgName
		}
	}

	currentVersion := styler.Color(shared, style.VersionColor) +
		styler.Color(version.Suffix(info.CurrentVersion, shared), style.OldColor)
	newVersion := styler.Color(shared, style.VersionColor) +
		styler.Color(version.Suffix(info.NewVersion, shared), style.NewColor)

	separator := ""
	if info.CurrentVersion != "" || info.NewVersion != "" {
		separator = constants.VersionSeparator
	}

	if style.Template != "" {
		return expandTemplate(style.Template, map[string]string{
			"pkgName":        pkgName,
			"currentVersion": currentVersion,
			"newVersion":     newVersion,
			"daysOld":        daysOld,
		}), sortKey
	}

	// Alignment works on visible width so escape sequences never count
	// toward the columns.
	nameWidth := text.DisplayWidth(pkgName)
	var nameColumn string
	if styler.Enabled() {
		nameColumn = pkgName + text.Spacing(columnWidth-nameWidth)
	} else {
		// Plain text can be padded directly to the column width.
		nameColumn = text.ToWidth(pkgName, columnWidth)
		if nameWidth >= columnWidth {
			nameColumn += " "
		}
	}

	overflow := nameWidth - columnWidth
	if overflow < -1 {
		overflow = -1
	}
	spacing2 := text.Spacing(columnWidth - constants.VersionColumnAllowance -
		text.DisplayWidth(info.CurrentVersion) - overflow)

	verboseSuffix := ""
	if style.Verbose && info.Description != "" {
		verboseSuffix = "\n" + text.FormatParagraph(info.Description, termWidth)
	}

	return " " + nameColumn + " " + currentVersion + spacing2 +
		separator + newVersion + daysOld + verboseSuffix, sortKey
}

// Render formats a set of update records, stable-sorts them by sort key and
// joins the lines with newlines.
//
// Parameters:
//   - records: The update records to render
//   - style: The render configuration shared by every line
//
// Returns:
//   - string: The joined report block, empty for an empty record set
func Render(records []pkginfo.InstallInfo, style Style) string {
	type formatted struct {
		line string
		key  string
	}

	lines := make([]formatted, len(records))
	for i, record := range records {
		line, key := Format(record, style)
		lines[i] = formatted{line: line, key: key}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].key < lines[j].key
	})

	rendered := make([]string, len(lines))
	for i, entry := range lines {
		rendered[i] = entry.line
	}
	return strings.Join(rendered, "\n")
}
