// Package version implements version-string comparison for upgrade display.
//
// The diff here is presentational, not semantic: it finds the shared prefix
// of two version strings at delimiter granularity so the renderer can
// highlight only the changed tail, and assigns an integer weight ranking how
// different the versions are. It never validates version syntax; arbitrary
// byte strings degrade to a full-string diff.
package version

import (
	"strings"

	"github.com/ajxudir/pacreport/pkg/constants"
)

// separators are the version-delimiter characters. Diffs are reported at
// delimiter granularity: the shared prefix always ends on one of these.
const separators = ".-:+_~"

// isSeparator reports whether a byte is a version delimiter.
func isSeparator(b byte) bool {
	return strings.IndexByte(separators, b) >= 0
}

// CommonPrefix computes the shared prefix of two version strings and a
// numeric distance weight.
//
// It performs the following operations:
//   - Step 1: Handles the degenerate cases (either side empty, both equal)
//   - Step 2: Scans byte-by-byte to the first mismatch
//   - Step 3: Retreats to the last delimiter before the mismatch, so the
//     shared prefix covers only whole segments ("1.2.3" vs "1.2.4" shares
//     "1.2.", not "1.2.3"'s matching bytes)
//   - Step 4: Counts the delimiter-separated segments that differ
//
// Parameters:
//   - a: The first version string (typically the current version)
//   - b: The second version string (typically the new version)
//
// Returns:
//   - string: The shared prefix, always a prefix of both inputs; empty when
//     either input is empty or nothing matches through a delimiter
//   - int: The count of differing segments; 0 for identical inputs,
//     constants.MaxDiffWeight when either input is empty
func CommonPrefix(a, b string) (string, int) {
	if a == "" || b == "" {
		return "", constants.MaxDiffWeight
	}
	if a == b {
		return a, 0
	}

	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	mismatch := 0
	for mismatch < limit && a[mismatch] == b[mismatch] {
		mismatch++
	}

	shared := ""
	for i := mismatch - 1; i >= 0; i-- {
		if isSeparator(a[i]) {
			shared = a[:i+1]
			break
		}
	}

	return shared, segmentDistance(a, b)
}

// Suffix returns the remainder of a version string after its shared prefix.
//
// For any inputs, full == shared + Suffix(full, shared) holds whenever
// shared came from CommonPrefix against full.
//
// Parameters:
//   - full: The complete version string
//   - shared: The shared prefix reported by CommonPrefix
//
// Returns:
//   - string: The changed tail of full
func Suffix(full, shared string) string {
	return strings.TrimPrefix(full, shared)
}

// segmentDistance counts the delimiter-separated segments of a and b that
// differ, scanning leading segments pairwise and charging every trailing
// unpaired segment.
func segmentDistance(a, b string) int {
	segsA := splitSegments(a)
	segsB := splitSegments(b)

	matching := 0
	for matching < len(segsA) && matching < len(segsB) && segsA[matching] == segsB[matching] {
		matching++
	}

	longest := len(segsA)
	if len(segsB) > longest {
		longest = len(segsB)
	}
	distance := longest - matching
	if distance > constants.MaxDiffWeight {
		distance = constants.MaxDiffWeight
	}
	return distance
}

// splitSegments splits a version string on every delimiter character.
// Consecutive delimiters produce no empty segments.
func splitSegments(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		return r < 128 && isSeparator(byte(r))
	})
}
