package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pacreport/pkg/display"
	"github.com/ajxudir/pacreport/pkg/errors"
	"github.com/ajxudir/pacreport/pkg/search"
	"github.com/ajxudir/pacreport/pkg/verbose"
	"github.com/ajxudir/pacreport/pkg/warnings"
)

var (
	searchQuietFlag     bool
	searchEnumerateFlag bool
	searchInstalledFlag string
	searchAURFlag       bool
)

// searchInput is the YAML document shape consumed by the search command.
type searchInput struct {
	Results []search.Record `yaml:"results"`
}

var searchCmd = &cobra.Command{
	Use:   "search <results-file> [query...]",
	Short: "Render search results ranked by relevance",
	Long: `Render repository and AUR search results ranked by relevance.

The results file is a YAML document with one entry per result:

  results:
    - name: pikaur
      version: "1.15.3"
      description: AUR helper
      num_votes: 740
      popularity: 9.82

Queries filter results by substring match against the package name; queries
matching nothing produce a not-found notice on stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchQuietFlag, "quiet", "q", false, "Print bare package names only")
	searchCmd.Flags().BoolVar(&searchEnumerateFlag, "enumerate", false, "Prefix each result with its position")
	searchCmd.Flags().StringVar(&searchInstalledFlag, "installed", "", "YAML file mapping installed package names to versions")
	searchCmd.Flags().BoolVar(&searchAURFlag, "aur", false, "Word the not-found notice for an AUR lookup")
}

// runSearch executes the search command.
//
// It performs the following operations:
//   - Step 1: Loads configuration and the result records
//   - Step 2: Loads the optional installed-version map
//   - Step 3: Filters the records against the positional queries and prints
//     a not-found notice for queries matching nothing
//   - Step 4: Streams the rendered result lines to stdout
//
// Parameters:
//   - cmd: The cobra command instance
//   - args: Positional arguments (results file, then optional queries)
//
// Returns:
//   - error: An ExitError describing the failure, or nil
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := loadSearchInput(args[0])
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	installed, err := loadInstalledVersions(searchInstalledFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	styler := newStyler(cfg)
	termWidth := terminalWidth(cfg)

	records := input.Results
	if queries := args[1:]; len(queries) > 0 {
		var notFound []string
		records, notFound = filterByQueries(input.Results, queries)
		display.PrintNotFound(warnings.WarningWriter(), styler, notFound, !searchAURFlag, termWidth)
	}
	verbose.Printf("Rendering %d search result(s)", len(records))

	lines := search.Render(records, installed, search.Options{
		Styler:        styler,
		Quiet:         searchQuietFlag,
		Enumerated:    searchEnumerateFlag,
		EnumerateFrom: 1,
		TerminalWidth: termWidth,
		VersionColor:  cfg.Colors.Version,
		OutdatedColor: cfg.Colors.VersionDiffOld,
	})
	for line := range lines {
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
	return nil
}

// loadSearchInput reads and decodes a search result file.
//
// Parameters:
//   - path: The results file path
//
// Returns:
//   - *searchInput: The decoded document
//   - error: Any read or decode error
func loadSearchInput(path string) (*searchInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var input searchInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	return &input, nil
}

// loadInstalledVersions reads a name-to-version map of installed packages.
//
// Parameters:
//   - path: The map file path; empty yields an empty map
//
// Returns:
//   - map[string]string: Installed versions keyed by package name
//   - error: Any read or decode error
func loadInstalledVersions(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read installed map: %w", err)
	}

	installed := make(map[string]string)
	if err := yaml.Unmarshal(data, &installed); err != nil {
		return nil, fmt.Errorf("failed to parse installed map: %w", err)
	}
	return installed, nil
}

// filterByQueries keeps records whose name contains any query as a
// substring, case-insensitive.
//
// Parameters:
//   - records: The full result set
//   - queries: The positional queries
//
// Returns:
//   - []search.Record: The matching records, input order preserved
//   - []string: The queries that matched nothing
func filterByQueries(records []search.Record, queries []string) ([]search.Record, []string) {
	var matched []search.Record
	var notFound []string

	seen := make(map[string]bool, len(records))
	for _, query := range queries {
		needle := strings.ToLower(query)
		found := false
		for _, record := range records {
			if strings.Contains(strings.ToLower(record.Name), needle) {
				found = true
				if !seen[record.Name] {
					seen[record.Name] = true
					matched = append(matched, record)
				}
			}
		}
		if !found {
			notFound = append(notFound, query)
		}
	}
	return matched, notFound
}
