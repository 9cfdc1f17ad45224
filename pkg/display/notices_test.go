package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/pacreport/pkg/testutil"
	"github.com/ajxudir/pacreport/pkg/text"
)

func TestPrintNotFound(t *testing.T) {
	styler := text.NewStyler(false)

	t.Run("empty name list prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		PrintNotFound(&buf, styler, nil, false, 80)
		assert.Empty(t, buf.String())
	})

	t.Run("AUR wording pluralizes", func(t *testing.T) {
		var buf bytes.Buffer
		PrintNotFound(&buf, styler, []string{"foo", "bar"}, false, 80)

		assert.Contains(t, buf.String(), ":: Following packages cannot be found in AUR:")
		assert.Contains(t, buf.String(), "  foo")
		assert.Contains(t, buf.String(), "  bar")
	})

	t.Run("repository wording in singular", func(t *testing.T) {
		var buf bytes.Buffer
		PrintNotFound(&buf, styler, []string{"foo"}, true, 80)

		assert.Contains(t, buf.String(), ":: Following package cannot be found in repositories:")
	})

	t.Run("one indented line per name", func(t *testing.T) {
		var buf bytes.Buffer
		PrintNotFound(&buf, styler, []string{"foo", "bar", "baz"}, false, 80)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 4)
	})
}

func TestPrintIgnored(t *testing.T) {
	styler := text.NewStyler(false)

	t.Run("both versions show the update form", func(t *testing.T) {
		var buf bytes.Buffer
		info := testutil.NewInstallInfo("firefox").WithVersions("1.0", "2.0").Build()
		PrintIgnored(&buf, styler, info)

		assert.Equal(t, ":: Ignoring package update firefox (1.0 => 2.0)\n", buf.String())
	})

	t.Run("only current version shows the short form", func(t *testing.T) {
		var buf bytes.Buffer
		info := testutil.NewInstallInfo("firefox").WithVersions("1.0", "").Build()
		PrintIgnored(&buf, styler, info)

		assert.Equal(t, ":: Ignoring package firefox 1.0\n", buf.String())
	})

	t.Run("only new version shows the short form", func(t *testing.T) {
		var buf bytes.Buffer
		info := testutil.NewInstallInfo("firefox").WithVersions("", "2.0").Build()
		PrintIgnored(&buf, styler, info)

		assert.Equal(t, ":: Ignoring package firefox 2.0\n", buf.String())
	})
}

func TestPrintUpToDate(t *testing.T) {
	t.Run("formats the skip notice", func(t *testing.T) {
		var buf bytes.Buffer
		PrintUpToDate(&buf, text.NewStyler(false), "firefox", "128.0-1", "repo")

		assert.Equal(t, ":: firefox 128.0-1 repo package is up to date - skipping\n", buf.String())
	})
}

func TestPrintVersionBanner(t *testing.T) {
	t.Run("quiet mode prints bare version lines", func(t *testing.T) {
		var buf bytes.Buffer
		PrintVersionBanner(&buf, "1.2.3", "Pacman v6.1.0", true)

		assert.Equal(t, "pacreport v1.2.3\nPacman v6.1.0\n", buf.String())
	})

	t.Run("quiet mode omits an empty backend line", func(t *testing.T) {
		var buf bytes.Buffer
		PrintVersionBanner(&buf, "1.2.3", "", true)

		assert.Equal(t, "pacreport v1.2.3\n", buf.String())
	})

	t.Run("banner form carries the version", func(t *testing.T) {
		var buf bytes.Buffer
		PrintVersionBanner(&buf, "1.2.3", "Pacman v6.1.0", false)

		assert.Contains(t, buf.String(), "pacreport v1.2.3")
		assert.Contains(t, buf.String(), "Pacman v6.1.0")
	})
}
