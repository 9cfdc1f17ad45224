// Package constants provides centralized values used throughout the application.
// This eliminates magic numbers in the rendering code and provides a single
// source of truth for the fixed color palette and layout tunables.
package constants

// Fixed color palette indices for report decorations.
// These are ANSI-256 palette positions and match the established report
// appearance; changing them changes every rendered report.
const (
	// ColorGroup is the palette index for group-membership annotations.
	ColorGroup = 4

	// ColorDependency is the palette index for required-by annotations.
	ColorDependency = 3

	// ColorProvided is the palette index for provided-by annotations.
	ColorProvided = 2

	// ColorReplacements is the palette index for replacement annotations and
	// installed-state markers.
	ColorReplacements = 14

	// ColorAURPrefix is the palette index for the "aur/" origin prefix.
	ColorAURPrefix = 9

	// ColorHeaderUpdate is the palette index for update and replacement
	// category header bullets.
	ColorHeaderUpdate = 12

	// ColorHeaderNewDep is the palette index for new-dependency category
	// header bullets and notice bullets.
	ColorHeaderNewDep = 11

	// ColorHeaderAUR is the palette index for the AUR update category header
	// bullet.
	ColorHeaderAUR = 14

	// BrightColorOffset shifts a base palette index to its bright variant.
	// Annotation payloads (package names inside a decoration) use the bright
	// variant of the decoration color.
	BrightColorOffset = 8
)

// Layout tunables for the upgrade line formatter.
const (
	// NameColumnCap is the hard upper bound on the package name column width.
	NameColumnCap = 37

	// NameColumnDivisor divides the terminal width to obtain the name column
	// width before capping.
	NameColumnDivisor = 2.5

	// VersionColumnAllowance is the fixed character allowance subtracted when
	// spacing the version column. It accounts for the decoration width of the
	// rendered current version and is a tuned value, not a derived one: its
	// correctness depends on the exact escape-sequence lengths produced by
	// the styler.
	VersionColumnAllowance = 18

	// MinTerminalWidth is the floor applied to reported terminal widths.
	// Non-positive or absurdly small widths are clamped here so spacing
	// arithmetic never goes negative.
	MinTerminalWidth = 40

	// DefaultTerminalWidth is used when no width can be determined.
	DefaultTerminalWidth = 80

	// ParagraphIndent is the leading indent applied to wrapped description
	// paragraphs.
	ParagraphIndent = "  "
)

// Report text fragments.
const (
	// HeaderBullet prefixes every category header line.
	HeaderBullet = "::"

	// VersionSeparator sits between the current and new version columns.
	VersionSeparator = " -> "

	// AUROriginPrefix marks packages without repository metadata.
	AUROriginPrefix = "aur/"
)

// RepoColorPalette is the number of distinct colors available for hashing
// repository names; hashed indices land in [RepoColorBase, RepoColorBase+RepoColorPalette).
const (
	RepoColorBase    = 10
	RepoColorPalette = 5
)

// MaxDiffWeight is the weight assigned when a version diff cannot be
// computed (one side empty). It doubles as the padding bound for
// diff-weight sort keys.
const MaxDiffWeight = 9999
