package translation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultProviderName is used when no provider is configured.
const DefaultProviderName = "google"

// FactoryOptions carries everything a provider factory needs to build
// an adapter for one language pair.
type FactoryOptions struct {
	Source   string
	Target   string
	ProxyURL string
	// Timeout applies to providers without a protocol-fixed timeout.
	Timeout time.Duration
	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	Logger zerolog.Logger
}

// Factory builds a Translator for a language pair.
type Factory func(opts FactoryOptions) (Translator, error)

// Registry stores provider factories and resolves a default provider.
// Adapters are immutable per language pair, so callers construct one
// through the registry whenever the pair changes.
type Registry struct {
	factories       map[string]Factory
	defaultProvider string
}

// NewRegistry builds a registry with the built-in providers
// registered. An empty defaultProvider falls back to
// DefaultProviderName.
func NewRegistry(defaultProvider string) *Registry {
	normalized := normalizeProviderName(defaultProvider)
	if normalized == "" {
		normalized = DefaultProviderName
	}

	r := &Registry{
		factories:       make(map[string]Factory),
		defaultProvider: normalized,
	}

	_ = r.Register("google", func(opts FactoryOptions) (Translator, error) {
		return NewGoogle(GoogleOptions{
			Source:   opts.Source,
			Target:   opts.Target,
			BaseURL:  opts.BaseURL,
			ProxyURL: opts.ProxyURL,
			Timeout:  opts.Timeout,
			Logger:   opts.Logger,
		})
	})
	_ = r.Register("reverso", func(opts FactoryOptions) (Translator, error) {
		return NewReverso(ReversoOptions{
			Source:   opts.Source,
			Target:   opts.Target,
			BaseURL:  opts.BaseURL,
			ProxyURL: opts.ProxyURL,
			Logger:   opts.Logger,
		})
	})

	if _, exists := r.factories[r.defaultProvider]; !exists {
		r.defaultProvider = DefaultProviderName
	}
	return r
}

// Register adds one provider factory.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("factory is nil")
	}
	normalized := normalizeProviderName(name)
	if normalized == "" {
		return fmt.Errorf("provider name is required")
	}
	r.factories[normalized] = factory
	return nil
}

// New builds a Translator from the named provider. An empty name uses
// the configured default.
func (r *Registry) New(name string, opts FactoryOptions) (Translator, error) {
	resolved := normalizeProviderName(name)
	if resolved == "" {
		resolved = r.defaultProvider
	}
	factory, ok := r.factories[resolved]
	if !ok {
		return nil, fmt.Errorf("translation provider %q is not registered (available: %s)", resolved, strings.Join(r.ProviderNames(), ", "))
	}
	return factory(opts)
}

// DefaultProvider returns the resolved default provider name.
func (r *Registry) DefaultProvider() string {
	return r.defaultProvider
}

// ProviderNames returns the sorted registered provider names.
func (r *Registry) ProviderNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
