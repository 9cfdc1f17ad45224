package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/ajxudir/pacreport/pkg/display"
	"github.com/ajxudir/pacreport/pkg/errors"
)

// Build information set via ldflags at release time.
var (
	// Version is the semantic version of this build.
	Version = "dev"

	// Commit is the git commit hash of this build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

var (
	versionQuietFlag   bool
	versionBackendFlag string
	versionCheckFlag   string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information for pacreport and, when supplied, the
package manager backend.

With --check-latest, the given release version is compared against this
build and an update hint is printed when it is newer.`,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().BoolVarP(&versionQuietFlag, "quiet", "q", false, "Print the bare version lines only")
	versionCmd.Flags().StringVar(&versionBackendFlag, "backend-version", "", "Package manager backend version line to include")
	versionCmd.Flags().StringVar(&versionCheckFlag, "check-latest", "", "Compare a release version against this build")
}

// runVersion executes the version command.
//
// Parameters:
//   - cmd: The cobra command instance
//   - args: Positional arguments (unused)
//
// Returns:
//   - error: An ExitError when --check-latest receives an invalid version
func runVersion(cmd *cobra.Command, args []string) error {
	display.PrintVersionBanner(os.Stdout, Version, versionBackendFlag, versionQuietFlag)
	if !versionQuietFlag {
		_, _ = fmt.Fprintf(os.Stdout, "commit: %s, built: %s\n", Commit, Date)
	}

	if versionCheckFlag != "" {
		return checkLatest(versionCheckFlag)
	}
	return nil
}

// checkLatest compares a release version against this build and prints an
// update hint when the release is newer.
//
// Versions are compared as semantic versions; the "v" prefix is optional on
// both sides. A dev build always reports the release as newer.
//
// Parameters:
//   - latest: The release version to compare against
//
// Returns:
//   - error: An ExitError with ExitConfigError when latest is not semver
func checkLatest(latest string) error {
	canonical := ensureVersionPrefix(latest)
	if !semver.IsValid(canonical) {
		return errors.NewExitErrorf(errors.ExitConfigError, "invalid version %q", latest)
	}

	current := ensureVersionPrefix(Version)
	if !semver.IsValid(current) || semver.Compare(canonical, current) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "update available: %s -> %s\n", Version, latest)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, "up to date")
	return nil
}

// ensureVersionPrefix normalizes a version string to the "v" prefixed form
// the semver package expects.
func ensureVersionPrefix(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
