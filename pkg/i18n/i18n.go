// Package i18n provides the localization surface used by the rendering code.
//
// The actual translation backend is an external collaborator: callers may
// install a Translator at startup and every user-facing string flows through
// T and TN. The default translator is a passthrough with an English plural
// rule, so the package is fully usable without any backend installed.
package i18n

import "sync"

// Translator resolves message templates to localized strings.
//
// Implementations must be safe for concurrent use; the rendering code calls
// them from whatever goroutine performs the render.
type Translator interface {
	// Translate returns the localized form of a message template.
	//
	// Parameters:
	//   - template: The source-language message template
	//
	// Returns:
	//   - string: The localized message, or the template itself if unknown
	Translate(template string) string

	// TranslateN returns the localized form of a count-dependent message.
	//
	// Parameters:
	//   - singular: The source-language singular template
	//   - plural: The source-language plural template
	//   - n: The count the message refers to
	//
	// Returns:
	//   - string: The localized message for the given count
	TranslateN(singular, plural string, n int) string
}

var (
	mu         sync.RWMutex
	translator Translator = passthrough{}
)

// passthrough is the default Translator: identity translation with the
// English plural rule (singular only when n == 1).
type passthrough struct{}

func (passthrough) Translate(template string) string { return template }

func (passthrough) TranslateN(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}

// SetTranslator installs a translation backend and returns a restore function.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Saves the previous translator for restoration
//   - Installs the new translator (passthrough if nil)
//
// Parameters:
//   - t: The Translator to install; if nil, the passthrough default is used
//
// Returns:
//   - func(): A restore function that reinstates the previous translator
func SetTranslator(t Translator) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := translator
	if t == nil {
		translator = passthrough{}
	} else {
		translator = t
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		translator = previous
	}
}

// T translates a message template through the installed backend.
//
// Parameters:
//   - template: The source-language message template
//
// Returns:
//   - string: The localized message
func T(template string) string {
	mu.RLock()
	t := translator
	mu.RUnlock()
	return t.Translate(template)
}

// TN translates a count-dependent message through the installed backend.
//
// Parameters:
//   - singular: The source-language singular template
//   - plural: The source-language plural template
//   - n: The count the message refers to
//
// Returns:
//   - string: The localized message for the given count
func TN(singular, plural string, n int) string {
	mu.RLock()
	t := translator
	mu.RUnlock()
	return t.TranslateN(singular, plural, n)
}
