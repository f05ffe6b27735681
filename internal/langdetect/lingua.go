// Package langdetect resolves the "auto" source sentinel into a
// concrete ISO 639-1 code without a network round trip.
package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// minLetters is the smallest sample the detector gives reliable
// answers for; shorter inputs return "".
const minLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectISO6391 guesses the language of text and returns its two-letter
// code, or "" when the sample is too short or ambiguous.
func DetectISO6391(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minLetters {
		return ""
	}

	detected, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}

	code := strings.ToLower(detected.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

// DetectWithConfidence returns the detected code together with the
// detector's confidence for it, or ("", 0) when nothing can be said.
func DetectWithConfidence(text string) (string, float64) {
	code := DetectISO6391(text)
	if code == "" {
		return "", 0
	}

	values := getDetector().ComputeLanguageConfidenceValues(strings.TrimSpace(text))
	if len(values) == 0 {
		return code, 0
	}
	return code, values[0].Value()
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
