// Package display prints the one-off user-facing notices that accompany the
// main reports: not-found packages, ignored packages, up-to-date skips and
// the version banner.
//
// Every printer takes its destination writer explicitly; notices
// conventionally go to stderr while report and search output go to stdout.
package display

import (
	"fmt"
	"io"

	"github.com/ajxudir/pacreport/pkg/constants"
	"github.com/ajxudir/pacreport/pkg/i18n"
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/text"
	"github.com/ajxudir/pacreport/pkg/upgrade"
)

// PrintNotFound prints the notice for packages missing from their source.
//
// Does nothing for an empty name list. The wording differs between
// repository and AUR lookups and pluralizes on the number of names.
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - styler: Decoration capability
//   - names: The package names that could not be found
//   - repo: true when the lookup was against repositories, false for the AUR
//   - termWidth: Terminal width for name indentation
//
// Example output:
//
//	:: Following packages cannot be found in AUR:
//	  somepackage
//	  otherpackage
func PrintNotFound(w io.Writer, styler *text.Styler, names []string, repo bool, termWidth int) {
	if len(names) == 0 {
		return
	}

	var label string
	if repo {
		label = i18n.TN(
			"Following package cannot be found in repositories:",
			"Following packages cannot be found in repositories:",
			len(names),
		)
	} else {
		label = i18n.TN(
			"Following package cannot be found in AUR:",
			"Following packages cannot be found in AUR:",
			len(names),
		)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n",
		styler.Color(constants.HeaderBullet, constants.ColorHeaderNewDep),
		styler.Bold(label))
	width := text.ClampWidth(termWidth)
	for _, name := range names {
		_, _ = fmt.Fprintln(w, text.FormatParagraph(name, width))
	}
}

// PrintIgnored prints the notice for a package excluded from an upgrade.
//
// The record is rendered through the terse template form rather than the
// aligned column layout, choosing the template by which versions are known:
// both versions give "name (current => new)", a single known version gives
// "name version".
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - styler: Decoration capability
//   - info: The ignored package record
func PrintIgnored(w io.Writer, styler *text.Styler, info pkginfo.InstallInfo) {
	var label, template string
	switch {
	case info.CurrentVersion != "" && info.NewVersion != "":
		label = i18n.T("Ignoring package update %s")
		template = "{pkgName} ({currentVersion} => {newVersion})"
	case info.CurrentVersion != "":
		label = i18n.T("Ignoring package %s")
		template = "{pkgName} {currentVersion}"
	default:
		label = i18n.T("Ignoring package %s")
		template = "{pkgName} {newVersion}"
	}

	line := upgrade.Render([]pkginfo.InstallInfo{info}, upgrade.Style{
		Styler:   styler,
		Template: template,
	})

	_, _ = fmt.Fprintf(w, "%s %s\n",
		styler.Color(constants.HeaderBullet, constants.ColorHeaderNewDep),
		fmt.Sprintf(label, line))
}

// PrintUpToDate prints the skip notice for an already current package.
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - styler: Decoration capability
//   - name: The package name
//   - installedVersion: The version already installed
//   - source: Human-readable package source name ("repo", "aur")
func PrintUpToDate(w io.Writer, styler *text.Styler, name, installedVersion, source string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		styler.Color(constants.HeaderBullet, constants.ColorHeaderNewDep),
		fmt.Sprintf(i18n.T("%s %s %s package is up to date - skipping"),
			name, styler.Bold(installedVersion), source))
}

// PrintVersionBanner prints version information.
//
// In quiet mode only the bare version lines are printed; otherwise a small
// decorated banner wraps them.
//
// Parameters:
//   - w: Destination writer (typically os.Stdout)
//   - appVersion: This tool's version string
//   - backendVersion: The package manager backend's version line
//   - quiet: Print the undecorated form
func PrintVersionBanner(w io.Writer, appVersion, backendVersion string, quiet bool) {
	if quiet {
		_, _ = fmt.Fprintf(w, "pacreport v%s\n", appVersion)
		if backendVersion != "" {
			_, _ = fmt.Fprintln(w, backendVersion)
		}
		return
	}

	_, _ = fmt.Fprintf(w, `
   .--.
  |o_o |     pacreport v%s
  |:_/ |     deterministic upgrade reports
 //   \ \
(|     | )   %s
`, appVersion, backendVersion)
}
