// Package validate holds the pure input checks every translator runs
// before touching the network.
package validate

import (
	"fmt"
	"strings"
)

// Error reports text that cannot be submitted to a backend.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "invalid input: " + e.Reason
}

// IsEmpty reports whether the text is empty or whitespace-only.
func IsEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Check rejects text that exceeds the backend's character ceiling.
// Empty text passes; adapters short-circuit it to an identity return
// instead of failing.
func Check(text string, maxChars int) error {
	if maxChars > 0 && len([]rune(text)) > maxChars {
		return &Error{Reason: fmt.Sprintf("text length %d exceeds the %d character limit", len([]rune(text)), maxChars)}
	}
	return nil
}
