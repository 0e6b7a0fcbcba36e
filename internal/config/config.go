package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/meur/bisforge/internal/fetch"
	"github.com/meur/bisforge/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetch   FetchConfig
	Logging LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string   `envconfig:"PORT" default:"8080"`
	Host           string   `envconfig:"HOST" default:"0.0.0.0"`
	DBPath         string   `envconfig:"DB_PATH" default:"./bisforge.db"`
	AllowedDomain  string   `envconfig:"ALLOWED_DOMAIN" default:"wowhead.com"`
	AllowedOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// FetchConfig holds outbound request configuration.
type FetchConfig struct {
	Timeout          time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	UserAgent        string        `envconfig:"FETCH_USER_AGENT"`
	CloudflareBypass bool          `envconfig:"FETCH_CLOUDFLARE_BYPASS" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Profile returns the fetch profile, keeping the default user agent unless
// one is configured.
func (c FetchConfig) Profile() fetch.Profile {
	p := fetch.DefaultProfile()
	p.Timeout = c.Timeout
	p.CloudflareBypass = c.CloudflareBypass
	if c.UserAgent != "" {
		p.UserAgent = c.UserAgent
	}
	return p
}

// FetchProfile is Fetch.Profile restricted to the allowed domain
func (c *Config) FetchProfile() fetch.Profile {
	p := c.Fetch.Profile()
	p.AllowedDomain = c.Server.AllowedDomain
	return p
}

// Logger returns the logging package configuration.
func (c LogConfig) Logger() logging.Config {
	return logging.Config{Level: c.Level, Development: c.Development}
}
