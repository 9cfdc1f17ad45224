// Package text provides terminal text decoration and width primitives for
// the report renderers.
//
// All colorization flows through a Styler, a capability object that either
// applies ANSI-256 palette colors through lipgloss or returns text unchanged
// when color is disabled. Rendering code depends on the capability, never on
// a color-enabled flag of its own.
package text

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/ajxudir/pacreport/pkg/constants"
)

// Styler applies palette colors and bold decoration to text.
//
// A Styler is immutable after construction and safe for concurrent use.
// The zero value is not usable; construct one with NewStyler.
//
// Example:
//
//	styler := text.NewStyler(true)
//	line := styler.Color("extra/", 13) + styler.Bold("firefox")
type Styler struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// NewStyler creates a Styler.
//
// The renderer is pinned to the ANSI-256 color profile rather than detected
// from the output stream, so rendered escape sequences are deterministic for
// a given palette index regardless of where the output eventually goes.
//
// Parameters:
//   - enabled: Whether decoration is applied; a disabled Styler returns all
//     text unchanged
//
// Returns:
//   - *Styler: A new styler ready for use
func NewStyler(enabled bool) *Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return &Styler{
		enabled:  enabled,
		renderer: r,
	}
}

// Enabled reports whether this styler applies decoration.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Color renders text in the given ANSI-256 palette color.
//
// Parameters:
//   - text: The text to decorate
//   - index: ANSI-256 palette index (0-255)
//
// Returns:
//   - string: The decorated text, or the input unchanged when color is
//     disabled or the text is empty
func (s *Styler) Color(text string, index int) string {
	if !s.enabled || text == "" {
		return text
	}
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(index))).
		Render(text)
}

// Bold renders text in bold.
//
// Parameters:
//   - text: The text to decorate
//
// Returns:
//   - string: The bold text, or the input unchanged when color is disabled
//     or the text is empty
func (s *Styler) Bold(text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return s.renderer.NewStyle().Bold(true).Render(text)
}

// RepoColorIndex returns the palette index for a repository name.
//
// The index is a deterministic hash of the name into a small fixed palette,
// so the same repository gets the same color within a run and across runs.
//
// Parameters:
//   - name: The repository name
//
// Returns:
//   - int: A palette index in [RepoColorBase, RepoColorBase+RepoColorPalette)
func RepoColorIndex(name string) int {
	return len(name)%constants.RepoColorPalette + constants.RepoColorBase
}

// FormatRepoName renders a repository name as a colorized "name/" prefix.
//
// Parameters:
//   - styler: The styler to decorate with
//   - name: The repository name
//
// Returns:
//   - string: The decorated origin prefix
func FormatRepoName(styler *Styler, name string) string {
	return styler.Color(name+"/", RepoColorIndex(name))
}

// DisplayWidth returns the visible width of a string in terminal cells.
//
// Escape sequences produced by a Styler contribute nothing to the result;
// wide runes (CJK, emoji) count as two cells. This is the width used for all
// column alignment decisions.
//
// Parameters:
//   - val: The string to measure, possibly containing escape sequences
//
// Returns:
//   - int: The visible width in character cells
func DisplayWidth(val string) int {
	return lipgloss.Width(val)
}

// ToWidth pads a plain string to a target display width.
//
// It performs the following operations:
//   - Step 1: Returns the original string if width is <= 0
//   - Step 2: Calculates the current display width (accounting for unicode)
//   - Step 3: Returns the original string if already at or beyond the target
//   - Step 4: Pads with spaces to reach the target width
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string, or the original if already wide enough
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := runewidth.StringWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Spacing returns count spaces, flooring at a single space.
//
// Negative padding collapses to one space instead of panicking or producing
// an empty gap; the columns may collapse but the render never fails.
//
// Parameters:
//   - count: Desired number of spaces
//
// Returns:
//   - string: max(1, count) spaces
func Spacing(count int) string {
	if count < 1 {
		count = 1
	}
	return strings.Repeat(" ", count)
}

// FormatParagraph word-wraps text to the given width with a two-space indent.
//
// Measurement uses DisplayWidth, so decorated text wraps on its visible
// width. Words longer than a line are emitted on their own line rather than
// split mid-word.
//
// Parameters:
//   - text: The text to wrap
//   - width: The total line width budget including the indent
//
// Returns:
//   - string: The wrapped, indented paragraph without a trailing newline
func FormatParagraph(text string, width int) string {
	indent := constants.ParagraphIndent
	budget := width - DisplayWidth(indent)
	if budget < 1 {
		budget = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if DisplayWidth(current)+1+DisplayWidth(word) > budget {
			lines = append(lines, indent+current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, indent+current)

	return strings.Join(lines, "\n")
}

// ClampWidth clamps a terminal width to the sane minimum.
//
// Parameters:
//   - width: A reported terminal width, possibly zero or negative
//
// Returns:
//   - int: The width, or DefaultTerminalWidth when non-positive, never below
//     MinTerminalWidth
func ClampWidth(width int) int {
	if width <= 0 {
		width = constants.DefaultTerminalWidth
	}
	if width < constants.MinTerminalWidth {
		width = constants.MinTerminalWidth
	}
	return width
}

// TermWidth determines the terminal width for one render call.
//
// The width is resolved fresh on every call rather than cached, since the
// terminal can be resized between invocations. Resolution order: the
// override when positive, then the lookup collaborator, then the default.
//
// Parameters:
//   - override: A caller-supplied width (flag or config); <= 0 means unset
//
// Returns:
//   - int: A clamped terminal width, always >= MinTerminalWidth
func TermWidth(override int) int {
	if override > 0 {
		return ClampWidth(override)
	}
	return ClampWidth(widthLookup())
}

// widthLookup is the terminal metadata collaborator. It is a variable so
// tests and embedders can substitute their own source.
var widthLookup = envColumns

// SetWidthLookup swaps the terminal width source and returns a restore function.
//
// Parameters:
//   - fn: The width source; if nil, the environment-based default is used
//
// Returns:
//   - func(): A restore function that reinstates the previous source
func SetWidthLookup(fn func() int) func() {
	previous := widthLookup
	if fn == nil {
		widthLookup = envColumns
	} else {
		widthLookup = fn
	}
	return func() {
		widthLookup = previous
	}
}

// envColumns reads the COLUMNS environment variable.
func envColumns() int {
	var cols int
	if _, err := fmt.Sscanf(envGetter("COLUMNS"), "%d", &cols); err != nil {
		return 0
	}
	return cols
}

// envGetter is split out for tests.
var envGetter = os.Getenv
