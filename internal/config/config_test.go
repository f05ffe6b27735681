package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		Provider:    "google",
		Source:      "auto",
		Target:      "en",
		HTTPTimeout: 30 * time.Second,
		ServerHost:  "0.0.0.0",
		ServerPort:  8072,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"empty provider", func(c *Config) { c.Provider = " " }, "TRANSLATION_PROVIDER"},
		{"empty source", func(c *Config) { c.Source = "" }, "TRANSLATION_SOURCE"},
		{"empty target", func(c *Config) { c.Target = "" }, "TRANSLATION_TARGET"},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, "HTTP_TIMEOUT"},
		{"bad port", func(c *Config) { c.ServerPort = 0 }, "SERVER_PORT"},
		{"bad proxy", func(c *Config) { c.ProxyURL = "://nope" }, "PROXY_URL"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error should mention %s: %v", tc.wantMsg, err)
			}
		})
	}
}

func TestBaseURLFor(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.GoogleBaseURL = "http://google.test"
	cfg.ReversoBaseURL = "http://reverso.test"

	if got := cfg.BaseURLFor("google"); got != "http://google.test" {
		t.Fatalf("google override: %q", got)
	}
	if got := cfg.BaseURLFor(" Reverso "); got != "http://reverso.test" {
		t.Fatalf("reverso override: %q", got)
	}
	if got := cfg.BaseURLFor("other"); got != "" {
		t.Fatalf("unknown provider should have no override: %q", got)
	}
}
