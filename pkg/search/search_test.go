package search_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pacreport/pkg/search"
	"github.com/ajxudir/pacreport/pkg/testutil"
	"github.com/ajxudir/pacreport/pkg/text"
)

func collect(lines func(func(string) bool)) []string {
	var result []string
	for line := range lines {
		result = append(result, line)
	}
	return result
}

func TestRender(t *testing.T) {
	opts := search.Options{TerminalWidth: 80}

	t.Run("quiet mode yields bare names only", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "1.0", "extra"),
			testutil.SearchRecord("linux", "6.10", "core"),
		}, nil, search.Options{Quiet: true, TerminalWidth: 80}))

		assert.Equal(t, []string{"firefox", "linux"}, lines)
	})

	t.Run("results rank by votes and popularity descending", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.AURSearchRecord("unpopular", "1.0-1", 0, 0),
			testutil.AURSearchRecord("popular", "1.0-1", 500, 8.5),
		}, nil, search.Options{Quiet: true, TerminalWidth: 80}))

		assert.Equal(t, []string{"popular", "unpopular"}, lines)
	})

	t.Run("repository records rank neutrally in input order", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("bbb", "1", "extra"),
			testutil.SearchRecord("aaa", "1", "core"),
		}, nil, search.Options{Quiet: true, TerminalWidth: 80}))

		assert.Equal(t, []string{"bbb", "aaa"}, lines)
	})

	t.Run("AUR records missing a metric rank neutrally", func(t *testing.T) {
		// Only votes, no popularity: the record must not outrank a rated one
		// and keeps its input position among neutral records.
		votes := 100
		partial := search.Record{Name: "partial", Version: "1.0", NumVotes: &votes}

		lines := collect(search.Render([]search.Record{
			partial,
			testutil.SearchRecord("repopkg", "1.0", "extra"),
			testutil.AURSearchRecord("rated", "1.0-1", 1, 0.5),
		}, nil, search.Options{Quiet: true, TerminalWidth: 80}))

		assert.Equal(t, []string{"rated", "partial", "repopkg"}, lines)
	})

	t.Run("input slice is never reordered", func(t *testing.T) {
		input := []search.Record{
			testutil.AURSearchRecord("unpopular", "1.0-1", 0, 0),
			testutil.AURSearchRecord("popular", "1.0-1", 500, 8.5),
		}
		collect(search.Render(input, nil, search.Options{Quiet: true, TerminalWidth: 80}))

		assert.Equal(t, "unpopular", input[0].Name)
	})

	t.Run("full mode yields a result line and a description line", func(t *testing.T) {
		record := testutil.SearchRecord("firefox", "128.0-1", "extra")
		record.Description = "Standalone web browser"

		lines := collect(search.Render([]search.Record{record}, nil, opts))

		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "firefox")
		assert.Contains(t, lines[0], "128.0-1")
		assert.Equal(t, "  Standalone web browser", lines[1])
	})

	t.Run("repository marker prefixes the name", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "1.0", "extra"),
		}, nil, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "extra/firefox")
	})

	t.Run("AUR records carry the aur marker and rating", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.AURSearchRecord("pikaur", "1.16-1", 740, 9.82),
		}, nil, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "aur/pikaur")
		assert.Contains(t, lines[0], "(740, 9.82)")
	})

	t.Run("groups are listed after the version", func(t *testing.T) {
		record := testutil.SearchRecord("gimp", "2.10", "extra")
		record.Groups = []string{"graphics", "editors"}

		lines := collect(search.Render([]search.Record{record}, nil, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "(graphics editors)")
	})

	t.Run("installed at same version gets the plain marker", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "1.0", "extra"),
		}, map[string]string{"firefox": "1.0"}, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "[installed]")
	})

	t.Run("installed at another version names it", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "2.0", "extra"),
		}, map[string]string{"firefox": "1.0"}, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "[installed: 1.0]")
	})

	t.Run("uninstalled records carry no marker", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "1.0", "extra"),
		}, map[string]string{"linux": "6.10"}, opts))

		require.NotEmpty(t, lines)
		assert.NotContains(t, lines[0], "installed")
	})

	t.Run("out-of-date records annotate the flag date", func(t *testing.T) {
		flagged := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local).Unix()
		record := testutil.AURSearchRecord("stale", "1.0-1", 5, 0.1)
		record.OutOfDate = &flagged

		lines := collect(search.Render([]search.Record{record}, nil, opts))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "[out-of-date: 2024/03/15]")
	})

	t.Run("enumeration starts at the configured value", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.AURSearchRecord("popular", "1.0-1", 500, 8.5),
			testutil.AURSearchRecord("unpopular", "1.0-1", 0, 0),
		}, nil, search.Options{TerminalWidth: 80, Enumerated: true, EnumerateFrom: 1}))

		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "1) "))
		assert.True(t, strings.HasPrefix(lines[2], "2) "))
	})

	t.Run("early termination stops the traversal", func(t *testing.T) {
		seq := search.Render([]search.Record{
			testutil.AURSearchRecord("a", "1", 1, 1),
			testutil.AURSearchRecord("b", "1", 2, 2),
			testutil.AURSearchRecord("c", "1", 3, 3),
		}, nil, search.Options{Quiet: true, TerminalWidth: 80})

		count := 0
		for range seq {
			count++
			if count == 1 {
				break
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("decoration flows through an enabled styler", func(t *testing.T) {
		lines := collect(search.Render([]search.Record{
			testutil.SearchRecord("firefox", "1.0", "extra"),
		}, nil, search.Options{Styler: text.NewStyler(true), TerminalWidth: 80, VersionColor: 10}))

		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], fmt.Sprintf("38;5;%d", 10))
	})
}
