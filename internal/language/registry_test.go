package language

import (
	"errors"
	"testing"
)

func TestResolveMapsNamesAndPassesCodesThrough(t *testing.T) {
	t.Parallel()

	registry := Google()

	code, err := registry.Resolve("french")
	if err != nil {
		t.Fatalf("resolve name: %v", err)
	}
	if code != "fr" {
		t.Fatalf("unexpected code for french: %q", code)
	}

	// Resolution is idempotent: an already-resolved code passes through.
	again, err := registry.Resolve(code)
	if err != nil {
		t.Fatalf("resolve code: %v", err)
	}
	if again != "fr" {
		t.Fatalf("unexpected re-resolved code: %q", again)
	}

	auto, err := registry.Resolve(Auto)
	if err != nil {
		t.Fatalf("resolve auto: %v", err)
	}
	if auto != Auto {
		t.Fatalf("auto must pass through, got %q", auto)
	}
}

func TestResolveRejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	registry := Google()

	_, err := registry.Resolve("klingon")
	var notSupported *NotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("expected NotSupportedError, got %v", err)
	}
	if notSupported.Language != "klingon" {
		t.Fatalf("unexpected language in error: %q", notSupported.Language)
	}
	if len(notSupported.Supported) == 0 {
		t.Fatalf("error must carry the supported name set")
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	t.Parallel()

	registry := Google()

	if _, err := registry.Resolve("French"); err == nil {
		t.Fatalf("expected case-sensitive lookup to reject %q", "French")
	}
	if code, err := registry.Resolve(NormalizeName(" French ")); err != nil || code != "fr" {
		t.Fatalf("normalized lookup failed: %q, %v", code, err)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	registry := Google()

	for _, lang := range []string{"auto", "german", "de"} {
		if !registry.Contains(lang) {
			t.Fatalf("expected %q to be supported", lang)
		}
	}
	if registry.Contains("klingon") {
		t.Fatalf("klingon must not be supported")
	}
}

func TestCodeRegistryRejectsNames(t *testing.T) {
	t.Parallel()

	registry := Reverso()

	code, err := registry.Resolve("de")
	if err != nil || code != "de" {
		t.Fatalf("code pass-through failed: %q, %v", code, err)
	}

	var notSupported *NotSupportedError
	if _, err := registry.Resolve("german"); !errors.As(err, &notSupported) {
		t.Fatalf("expected full names to be rejected, got %v", err)
	}
}
