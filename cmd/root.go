// Package cmd implements the command-line interface for pacreport.
// It provides commands for rendering sysupgrade reports, search results,
// and version information from resolver-supplied record files.
package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ajxudir/pacreport/pkg/config"
	"github.com/ajxudir/pacreport/pkg/errors"
	"github.com/ajxudir/pacreport/pkg/text"
	"github.com/ajxudir/pacreport/pkg/verbose"
)

var exitFunc = os.Exit

var (
	verboseFlag bool
	noColorFlag bool
	widthFlag   int
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "pacreport",
	Short: "Deterministic upgrade-report and search-result renderer",
	Long: `Render resolver-supplied package update records as sorted,
column-aligned, optionally colorized reports.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success
//   - 1: Rendering or input failure
//   - 2: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Printf("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable color decoration")
	rootCmd.PersistentFlags().IntVar(&widthFlag, "width", 0, "Override detected terminal width")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(searchCmd)
}

// loadConfig loads the configuration honoring the persistent --config flag.
//
// Returns:
//   - *config.Config: The loaded configuration
//   - error: An ExitError with ExitConfigError on load failure
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag, "")
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}
	return cfg, nil
}

// newStyler builds the decoration capability for one command invocation.
//
// Color is applied when the config allows it for the current terminal and
// the --no-color flag is absent.
//
// Parameters:
//   - cfg: The loaded configuration
//
// Returns:
//   - *text.Styler: The styler for this invocation
func newStyler(cfg *config.Config) *text.Styler {
	isTerminal := isatty.IsTerminal(os.Stdout.Fd())
	enabled := cfg.ColorEnabled(isTerminal) && !noColorFlag
	return text.NewStyler(enabled)
}

// terminalWidth resolves the terminal width for one command invocation,
// honoring the --width flag, then the config override, then detection.
//
// Parameters:
//   - cfg: The loaded configuration
//
// Returns:
//   - int: The clamped terminal width
func terminalWidth(cfg *config.Config) int {
	if widthFlag > 0 {
		return text.TermWidth(widthFlag)
	}
	return text.TermWidth(cfg.UI.Width)
}
