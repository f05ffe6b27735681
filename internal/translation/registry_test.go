package translation

import (
	"context"
	"strings"
	"testing"
)

func TestRegistryBuildsBuiltinProviders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("")
	for _, name := range []string{"google", "reverso", " Google "} {
		tr, err := registry.New(name, FactoryOptions{Source: "auto", Target: "en"})
		if err != nil {
			t.Fatalf("provider %q: %v", name, err)
		}
		if tr == nil {
			t.Fatalf("provider %q: nil translator", name)
		}
	}
}

func TestRegistryUnknownProviderListsAvailable(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("")
	_, err := registry.New("deepl", FactoryOptions{Source: "auto", Target: "en"})
	if err == nil {
		t.Fatal("expected error for unregistered provider")
	}
	if !strings.Contains(err.Error(), "google") || !strings.Contains(err.Error(), "reverso") {
		t.Fatalf("error should list registered providers: %v", err)
	}
}

func TestRegistryDefaultProvider(t *testing.T) {
	t.Parallel()

	if got := NewRegistry("").DefaultProvider(); got != DefaultProviderName {
		t.Fatalf("empty default resolved to %q", got)
	}
	if got := NewRegistry("Reverso").DefaultProvider(); got != "reverso" {
		t.Fatalf("configured default resolved to %q", got)
	}
	if got := NewRegistry("deepl").DefaultProvider(); got != DefaultProviderName {
		t.Fatalf("unknown default should fall back, resolved to %q", got)
	}
}

func TestRegistryEmptyNameUsesDefault(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("reverso")
	tr, err := registry.New("", FactoryOptions{Source: "auto", Target: "en"})
	if err != nil {
		t.Fatalf("default provider: %v", err)
	}
	if tr.Name() != "reverso" {
		t.Fatalf("expected reverso, got %q", tr.Name())
	}
}

func TestRegistryCustomFactory(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("")
	if err := registry.Register("echo", func(opts FactoryOptions) (Translator, error) {
		return &stubTranslator{fn: func(text string) (string, error) { return text, nil }}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tr, err := registry.New("echo", FactoryOptions{})
	if err != nil {
		t.Fatalf("build custom provider: %v", err)
	}
	got, err := tr.Translate(context.Background(), "hi")
	if err != nil || got != "hi" {
		t.Fatalf("unexpected result: %q, %v", got, err)
	}

	if err := registry.Register("", nil); err == nil {
		t.Fatal("expected error for nil factory")
	}
}
