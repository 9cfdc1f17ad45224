package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("empty input encodes an empty object", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, nil, false))
		assert.Equal(t, "{}\n", buf.String())
	})

	t.Run("categories keep the report emission order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []Category{
			{Kind: AURUpdate, Records: records("pikaur")},
			{Kind: RepoUpdate, Records: records("firefox")},
		}, false))

		output := buf.String()
		assert.Less(t, strings.Index(output, `"repo-update"`), strings.Index(output, `"aur-update"`))
	})

	t.Run("records survive the round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []Category{
			{Kind: RepoUpdate, Records: records("firefox")},
		}, false))

		var decoded map[string][]map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded["repo-update"], 1)
		assert.Equal(t, "firefox", decoded["repo-update"][0]["name"])
		assert.Equal(t, "1.0-1", decoded["repo-update"][0]["current_version"])
	})

	t.Run("empty categories are omitted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []Category{
			{Kind: RepoUpdate},
			{Kind: AURUpdate, Records: records("pikaur")},
		}, false))

		assert.NotContains(t, buf.String(), "repo-update")
	})

	t.Run("manual selection omits new-dependency categories", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []Category{
			{Kind: RepoUpdate, Records: records("firefox")},
			{Kind: RepoNewDep, Records: records("icu")},
		}, true))

		assert.Contains(t, buf.String(), "repo-update")
		assert.NotContains(t, buf.String(), "repo-new-dep")
	})
}
