package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// upperTranslator is a test backend that uppercases every template.
type upperTranslator struct{}

func (upperTranslator) Translate(template string) string {
	return strings.ToUpper(template)
}

func (upperTranslator) TranslateN(singular, plural string, n int) string {
	if n == 1 {
		return strings.ToUpper(singular)
	}
	return strings.ToUpper(plural)
}

func TestT(t *testing.T) {
	t.Run("default passthrough returns the template", func(t *testing.T) {
		assert.Equal(t, "Ignoring package %s", T("Ignoring package %s"))
	})

	t.Run("installed backend is consulted", func(t *testing.T) {
		restore := SetTranslator(upperTranslator{})
		defer restore()

		assert.Equal(t, "HELLO", T("hello"))
	})
}

func TestTN(t *testing.T) {
	t.Run("singular at exactly one", func(t *testing.T) {
		assert.Equal(t, "%s group", TN("%s group", "%s groups", 1))
	})

	t.Run("plural otherwise", func(t *testing.T) {
		assert.Equal(t, "%s groups", TN("%s group", "%s groups", 0))
		assert.Equal(t, "%s groups", TN("%s group", "%s groups", 2))
	})
}

func TestSetTranslator(t *testing.T) {
	t.Run("restore reinstates the previous backend", func(t *testing.T) {
		restore := SetTranslator(upperTranslator{})
		assert.Equal(t, "ABC", T("abc"))

		restore()
		assert.Equal(t, "abc", T("abc"))
	})

	t.Run("nil installs the passthrough", func(t *testing.T) {
		outer := SetTranslator(upperTranslator{})
		defer outer()

		inner := SetTranslator(nil)
		defer inner()

		assert.Equal(t, "abc", T("abc"))
	})
}
