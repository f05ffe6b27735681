package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Provider string `envconfig:"TRANSLATION_PROVIDER" default:"google"`
	Source   string `envconfig:"TRANSLATION_SOURCE" default:"auto"`
	Target   string `envconfig:"TRANSLATION_TARGET" default:"en"`

	GoogleBaseURL  string        `envconfig:"GOOGLE_BASE_URL" default:""`
	ReversoBaseURL string        `envconfig:"REVERSO_BASE_URL" default:""`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ProxyURL       string        `envconfig:"PROXY_URL" default:""`

	ServerHost            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort            int           `envconfig:"SERVER_PORT" default:"8072"`
	ServerReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	ServerWriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ServerShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Provider) == "" {
		return fmt.Errorf("TRANSLATION_PROVIDER is required")
	}
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("TRANSLATION_SOURCE is required")
	}
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("TRANSLATION_TARGET is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if proxy := strings.TrimSpace(c.ProxyURL); proxy != "" {
		if _, err := url.Parse(proxy); err != nil {
			return fmt.Errorf("PROXY_URL is not a valid URL: %w", err)
		}
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	return nil
}

// BaseURLFor returns the configured endpoint override for a provider,
// or "" for the provider default.
func (c *Config) BaseURLFor(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "google":
		return strings.TrimSpace(c.GoogleBaseURL)
	case "reverso":
		return strings.TrimSpace(c.ReversoBaseURL)
	default:
		return ""
	}
}
