// Package translation wraps third-party web translation services
// behind one Translator contract. Each adapter owns its language
// registry, request shape, and failure mapping; the batch and file
// helpers in this package are built on top of Translate alone.
package translation

import (
	"context"

	"github.com/oversett/oversett/internal/language"
)

// Translator translates free-form text between the languages it was
// constructed with. Adapters are immutable after construction; build a
// new one to change the language pair.
type Translator interface {
	// Translate returns the translated text. Empty or whitespace-only
	// input and a source equal to the target return the trimmed input
	// unchanged without a network call.
	Translate(ctx context.Context, text string) (string, error)
	Name() string
	// SupportedLanguages returns the canonical names (or codes, for
	// code-only backends) the adapter accepts.
	SupportedLanguages() []string
}

// CandidateTranslator is implemented by backends that return several
// candidate translations for one input.
type CandidateTranslator interface {
	Translator
	// TranslateAll returns every candidate in backend order; the first
	// element is the primary translation.
	TranslateAll(ctx context.Context, text string) ([]string, error)
}

// resolveName resolves a language against a name-keyed registry,
// falling back to the normalized form so lax input like "French " or
// "GERMAN" resolves. The raw value is tried first: registry lookups
// are case-sensitive, and codes such as "zh-CN" must pass through
// untouched.
func resolveName(registry *language.Registry, raw string) (string, error) {
	code, err := registry.Resolve(raw)
	if err == nil {
		return code, nil
	}
	if normalized := language.NormalizeName(raw); normalized != raw {
		if code, normErr := registry.Resolve(normalized); normErr == nil {
			return code, nil
		}
	}
	return "", err
}

// resolveCode resolves a language against a code-only registry,
// falling back to the primary subtag of a normalized tag so "EN" and
// "de-DE" resolve while full names keep failing.
func resolveCode(registry *language.Registry, raw string) (string, error) {
	code, err := registry.Resolve(raw)
	if err == nil {
		return code, nil
	}
	if normalized := language.NormalizeCode(raw); normalized != "" && normalized != raw {
		if code, normErr := registry.Resolve(normalized); normErr == nil {
			return code, nil
		}
	}
	return "", err
}
