package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pacreport/pkg/errors"
	"github.com/ajxudir/pacreport/pkg/testutil"
	"github.com/ajxudir/pacreport/pkg/verbose"
	"github.com/ajxudir/pacreport/pkg/warnings"
)

// resetFlags restores every flag variable to its default between tests,
// since cobra keeps parsed values on the shared command tree.
func resetFlags() {
	verboseFlag = false
	noColorFlag = false
	widthFlag = 0
	configFlag = ""

	reportManualFlag = false
	reportSortFlag = ""
	reportShowOriginFlag = false
	reportOutputFlag = "text"
	reportTemplateFlag = ""
	reportIgnoreFlag = nil
	reportSkipCurrent = false

	searchQuietFlag = false
	searchEnumerateFlag = false
	searchInstalledFlag = ""
	searchAURFlag = false

	versionQuietFlag = false
	versionBackendFlag = ""
	versionCheckFlag = ""

	verbose.Disable()
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(resetFlags)

	rootCmd.SetArgs(args)
	stdout, stderr = testutil.CaptureOutput(t, func() {
		// The warnings writer binds os.Stderr at init time, so point it at
		// the capture pipe for the duration of the run.
		restore := warnings.SetWarningWriter(os.Stderr)
		defer restore()
		err = ExecuteTest()
	})
	return stdout, stderr, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleRecords = `categories:
  - kind: repo-update
    packages:
      - name: firefox
        current_version: "127.0-1"
        new_version: "128.0-1"
        repository: extra
  - kind: aur-update
    packages:
      - name: pikaur
        current_version: "1.15-1"
        new_version: "1.16-1"
`

const sampleResults = `results:
  - name: pikaur
    version: "1.16-1"
    description: AUR helper with minimal dependencies
    num_votes: 740
    popularity: 9.82
  - name: firefox
    version: "128.0-1"
    repository: extra
    description: Standalone web browser
`

func TestReportCommand(t *testing.T) {
	t.Run("renders the categorized report", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		stdout, _, err := runCommand(t, "report", path, "--width", "80")
		require.NoError(t, err)
		assert.Contains(t, stdout, ":: Repository package will be installed:")
		assert.Contains(t, stdout, "firefox")
		assert.Contains(t, stdout, ":: AUR package will be installed:")
		assert.Contains(t, stdout, "pikaur")
	})

	t.Run("json output keys by category tag", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		stdout, _, err := runCommand(t, "report", path, "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"repo-update"`)
		assert.Contains(t, stdout, `"firefox"`)
	})

	t.Run("ignored packages drop out with a notice", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		stdout, stderr, err := runCommand(t, "report", path, "--ignore", "firefox")
		require.NoError(t, err)
		assert.NotContains(t, stdout, "firefox")
		assert.Contains(t, stderr, "Ignoring package update firefox")
	})

	t.Run("up-to-date packages drop out when requested", func(t *testing.T) {
		path := writeFile(t, "records.yml", `categories:
  - kind: repo-update
    packages:
      - name: linux
        current_version: "6.10.1"
        new_version: "6.10.1"
        repository: core
`)

		stdout, stderr, err := runCommand(t, "report", path, "--skip-up-to-date")
		require.NoError(t, err)
		assert.NotContains(t, stdout, "linux")
		assert.Contains(t, stderr, "is up to date - skipping")
	})

	t.Run("template flag reshapes the lines", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		stdout, _, err := runCommand(t, "report", path,
			"--template", "{pkgName}: {currentVersion} => {newVersion}")
		require.NoError(t, err)
		assert.Contains(t, stdout, "firefox: 127.0-1 => 128.0-1")
	})

	t.Run("invalid template is a config error", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		_, _, err := runCommand(t, "report", path, "--template", "{pkgNmae}")
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})

	t.Run("unknown output format is a config error", func(t *testing.T) {
		path := writeFile(t, "records.yml", sampleRecords)

		_, _, err := runCommand(t, "report", path, "-o", "xml")
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})

	t.Run("unknown category tag fails", func(t *testing.T) {
		path := writeFile(t, "records.yml", "categories:\n  - kind: bogus\n    packages: []\n")

		_, _, err := runCommand(t, "report", path)
		require.Error(t, err)
		assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	})

	t.Run("missing records file fails", func(t *testing.T) {
		_, _, err := runCommand(t, "report", filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("quiet mode lists names by relevance", func(t *testing.T) {
		path := writeFile(t, "results.yml", sampleResults)

		stdout, _, err := runCommand(t, "search", path, "--quiet")
		require.NoError(t, err)
		assert.Equal(t, "pikaur\nfirefox\n", stdout)
	})

	t.Run("full output carries markers and descriptions", func(t *testing.T) {
		path := writeFile(t, "results.yml", sampleResults)

		stdout, _, err := runCommand(t, "search", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "aur/pikaur")
		assert.Contains(t, stdout, "extra/firefox")
		assert.Contains(t, stdout, "  Standalone web browser")
	})

	t.Run("queries filter by substring", func(t *testing.T) {
		path := writeFile(t, "results.yml", sampleResults)

		stdout, _, err := runCommand(t, "search", path, "--quiet", "fire")
		require.NoError(t, err)
		assert.Equal(t, "firefox\n", stdout)
	})

	t.Run("unmatched query prints the not-found notice", func(t *testing.T) {
		path := writeFile(t, "results.yml", sampleResults)

		_, stderr, err := runCommand(t, "search", path, "--quiet", "nosuchpkg")
		require.NoError(t, err)
		assert.Contains(t, stderr, "cannot be found in repositories:")
		assert.Contains(t, stderr, "nosuchpkg")
	})

	t.Run("installed map annotates results", func(t *testing.T) {
		results := writeFile(t, "results.yml", sampleResults)
		installed := writeFile(t, "installed.yml", "firefox: \"127.0-1\"\n")

		stdout, _, err := runCommand(t, "search", results, "--installed", installed)
		require.NoError(t, err)
		assert.Contains(t, stdout, "[installed: 127.0-1]")
	})
}

func TestVersionCommand(t *testing.T) {
	t.Run("quiet prints the bare version", func(t *testing.T) {
		stdout, _, err := runCommand(t, "version", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, "pacreport vdev\n", stdout)
	})

	t.Run("check-latest reports an update for a dev build", func(t *testing.T) {
		stdout, _, err := runCommand(t, "version", "--quiet", "--check-latest", "1.0.0")
		require.NoError(t, err)
		assert.Contains(t, stdout, "update available: dev -> 1.0.0")
	})

	t.Run("invalid check version is a config error", func(t *testing.T) {
		_, _, err := runCommand(t, "version", "--check-latest", "not-a-version")
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})
}
