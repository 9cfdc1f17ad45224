package cmd

import (
	"fmt"
	"os"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pacreport/pkg/display"
	"github.com/ajxudir/pacreport/pkg/errors"
	"github.com/ajxudir/pacreport/pkg/pkginfo"
	"github.com/ajxudir/pacreport/pkg/report"
	"github.com/ajxudir/pacreport/pkg/text"
	"github.com/ajxudir/pacreport/pkg/upgrade"
	"github.com/ajxudir/pacreport/pkg/verbose"
	"github.com/ajxudir/pacreport/pkg/warnings"
)

var (
	reportManualFlag     bool
	reportSortFlag       string
	reportShowOriginFlag bool
	reportOutputFlag     string
	reportTemplateFlag   string
	reportIgnoreFlag     []string
	reportSkipCurrent    bool
)

// reportInput is the YAML document shape consumed by the report command.
//
// Fields:
//   - Categories: Categorized update records, any order; category tags are
//     the stable names ("repo-update", "aur-new-dep", ...)
type reportInput struct {
	Categories []reportCategory `yaml:"categories"`
}

// reportCategory is one named record group in the input document.
type reportCategory struct {
	Kind     string                `yaml:"kind"`
	Packages []pkginfo.InstallInfo `yaml:"packages"`
}

var reportCmd = &cobra.Command{
	Use:   "report <records-file>",
	Short: "Render a sysupgrade report from a resolver record file",
	Long: `Render categorized update records as the composite sysupgrade report.

The records file is a YAML document with categorized package records:

  categories:
    - kind: repo-update
      packages:
        - name: linux
          current_version: "6.9.1"
          new_version: "6.10.0"
          repository: core

Category tags: repo-replacement, thirdparty-replacement, repo-update,
repo-new-dep, thirdparty-update, thirdparty-new-dep, aur-update, aur-new-dep.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportManualFlag, "manual-selection", false, "Render for manual package selection (plain text, no new dependencies)")
	reportCmd.Flags().StringVar(&reportSortFlag, "sort", "", "Line order: versiondiff, pkgname or repo (overrides config)")
	reportCmd.Flags().BoolVar(&reportShowOriginFlag, "show-origin", false, "Prefix every line with its origin repository")
	reportCmd.Flags().StringVarP(&reportOutputFlag, "output", "o", "text", "Output format: text or json")
	reportCmd.Flags().StringVar(&reportTemplateFlag, "template", "", "Terse line template, e.g. '{pkgName} {currentVersion} -> {newVersion}'")
	reportCmd.Flags().StringSliceVar(&reportIgnoreFlag, "ignore", nil, "Package names to exclude from the report")
	reportCmd.Flags().BoolVar(&reportSkipCurrent, "skip-up-to-date", false, "Drop records whose installed version already satisfies the candidate")
}

// runReport executes the report command.
//
// It performs the following operations:
//   - Step 1: Loads configuration and validates the flags
//   - Step 2: Reads and decodes the categorized record file
//   - Step 3: Applies the ignore list and the up-to-date filter, printing a
//     notice to stderr for each dropped record
//   - Step 4: Composes the report in the requested output format
//
// Parameters:
//   - cmd: The cobra command instance
//   - args: Positional arguments (the records file path)
//
// Returns:
//   - error: An ExitError describing the failure, or nil
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if reportTemplateFlag != "" {
		if err := upgrade.ValidateTemplate(reportTemplateFlag); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
	}
	if reportOutputFlag != "text" && reportOutputFlag != "json" {
		return errors.NewExitErrorf(errors.ExitConfigError, "unknown output format %q (expected text or json)", reportOutputFlag)
	}

	input, err := loadReportInput(args[0])
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	styler := newStyler(cfg)
	categories := make([]report.Category, 0, len(input.Categories))
	for _, raw := range input.Categories {
		kind, ok := report.ParseCategoryKind(raw.Kind)
		if !ok {
			return errors.NewExitErrorf(errors.ExitFailure, "unknown report category %q", raw.Kind)
		}

		records := filterRecords(raw.Packages, styler)
		verbose.CategoryRendered(kind.Tag(), len(records))
		categories = append(categories, report.Category{Kind: kind, Records: records})
	}

	sortValue := cfg.Sync.UpgradeSorting
	if reportSortFlag != "" {
		sortValue = reportSortFlag
	}

	if reportOutputFlag == "json" {
		if err := report.WriteJSON(os.Stdout, categories, reportManualFlag); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		return nil
	}

	output := report.Build(categories, report.Options{
		Styler:           styler,
		Verbose:          verbose.IsEnabled(),
		ManualSelection:  reportManualFlag,
		AlwaysShowOrigin: reportShowOriginFlag || cfg.Sync.AlwaysShowPkgOrigin,
		TerminalWidth:    terminalWidth(cfg),
		SortMode:         upgrade.ParseSortMode(sortValue),
		Template:         reportTemplateFlag,
		VersionColor:     cfg.Colors.Version,
		OldColor:         cfg.Colors.VersionDiffOld,
		NewColor:         cfg.Colors.VersionDiffNew,
	})
	_, _ = fmt.Fprint(os.Stdout, output)
	return nil
}

// loadReportInput reads and decodes a categorized record file.
//
// Parameters:
//   - path: The records file path
//
// Returns:
//   - *reportInput: The decoded document
//   - error: Any read or decode error
func loadReportInput(path string) (*reportInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var input reportInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse records file: %w", err)
	}
	return &input, nil
}

// filterRecords applies the ignore list and the up-to-date filter, printing
// a stderr notice for every dropped record.
//
// Parameters:
//   - records: The category's records
//   - styler: Decoration capability for the notices
//
// Returns:
//   - []pkginfo.InstallInfo: The surviving records, input order preserved
func filterRecords(records []pkginfo.InstallInfo, styler *text.Styler) []pkginfo.InstallInfo {
	ignored := make(map[string]bool, len(reportIgnoreFlag))
	for _, name := range reportIgnoreFlag {
		ignored[name] = true
	}

	kept := records[:0:0]
	for _, record := range records {
		if ignored[record.Name] {
			display.PrintIgnored(warnings.WarningWriter(), styler, record)
			verbose.RecordSkipped(record.Name, "listed in --ignore")
			continue
		}
		if reportSkipCurrent && upToDate(record) {
			source := "repo"
			if record.Origin().IsAUR() {
				source = "aur"
			}
			display.PrintUpToDate(warnings.WarningWriter(), styler, record.Name, record.CurrentVersion, source)
			verbose.RecordSkipped(record.Name, "already up to date")
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// upToDate reports whether a record's installed version already satisfies
// its candidate version.
//
// Versions are compared semantically when both parse; unparseable versions
// fall back to string equality so exotic version schemes never mask a real
// update.
//
// Parameters:
//   - record: The update record
//
// Returns:
//   - bool: true when no update is pending
func upToDate(record pkginfo.InstallInfo) bool {
	if record.CurrentVersion == "" || record.NewVersion == "" {
		return false
	}

	current, errCurrent := goversion.NewVersion(record.CurrentVersion)
	candidate, errCandidate := goversion.NewVersion(record.NewVersion)
	if errCurrent != nil || errCandidate != nil {
		return record.CurrentVersion == record.NewVersion
	}
	return current.GreaterThanOrEqual(candidate)
}
