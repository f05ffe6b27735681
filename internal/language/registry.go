package language

import (
	"fmt"
	"sort"
	"strings"
)

// Auto is the sentinel source language that asks the backend to detect
// the input language itself.
const Auto = "auto"

// Registry maps canonical language names to backend-specific codes.
// It is built once per adapter and never mutated afterwards. Lookups
// are case-sensitive; adapter constructors retry lax user input
// through NormalizeName or NormalizeCode before rejecting it.
type Registry struct {
	codes map[string]string
}

// NewRegistry builds a registry from a name→code table.
func NewRegistry(codes map[string]string) *Registry {
	owned := make(map[string]string, len(codes))
	for name, code := range codes {
		owned[name] = code
	}
	return &Registry{codes: owned}
}

// NewCodeRegistry builds a registry for backends that accept bare codes
// only. Each code maps to itself, so Resolve passes codes through and
// rejects everything else.
func NewCodeRegistry(codes []string) *Registry {
	owned := make(map[string]string, len(codes))
	for _, code := range codes {
		owned[code] = code
	}
	return &Registry{codes: owned}
}

// Resolve maps a user-supplied language to its code. Codes already
// known to the registry and the "auto" sentinel pass through unchanged;
// known canonical names map to their code. Anything else fails with
// NotSupportedError.
func (r *Registry) Resolve(raw string) (string, error) {
	if raw == Auto {
		return raw, nil
	}
	for _, code := range r.codes {
		if raw == code {
			return raw, nil
		}
	}
	if code, ok := r.codes[raw]; ok {
		return code, nil
	}
	return "", &NotSupportedError{Language: raw, Supported: r.Names()}
}

// Contains reports whether the language is "auto", a known name, or a
// known code.
func (r *Registry) Contains(language string) bool {
	if language == Auto {
		return true
	}
	if _, ok := r.codes[language]; ok {
		return true
	}
	for _, code := range r.codes {
		if language == code {
			return true
		}
	}
	return false
}

// Names returns the sorted canonical language names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codes))
	for name := range r.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Codes returns the sorted language codes.
func (r *Registry) Codes() []string {
	seen := make(map[string]struct{}, len(r.codes))
	codes := make([]string, 0, len(r.codes))
	for _, code := range r.codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// AsMap returns a copy of the full name→code mapping.
func (r *Registry) AsMap() map[string]string {
	out := make(map[string]string, len(r.codes))
	for name, code := range r.codes {
		out[name] = code
	}
	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.codes)
}

// NotSupportedError reports a language that is neither a registered
// name nor a registered code.
type NotSupportedError struct {
	Language  string
	Supported []string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("language %q is not supported (supported: %s)", e.Language, strings.Join(e.Supported, ", "))
}
