package config

import (
	"testing"
	"time"

	"github.com/meur/bisforge/internal/fetch"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "wowhead.com", cfg.Server.AllowedDomain)
	require.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	require.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	require.True(t, cfg.Fetch.CloudflareBypass)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("FETCH_USER_AGENT", "bisforge-test")
	t.Setenv("FETCH_CLOUDFLARE_BYPASS", "false")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://bis.example.com")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, []string{"http://localhost:5173", "https://bis.example.com"}, cfg.Server.AllowedOrigins)
	require.True(t, cfg.Logging.Development)

	p := cfg.Fetch.Profile()
	require.Equal(t, 3*time.Second, p.Timeout)
	require.Equal(t, "bisforge-test", p.UserAgent)
	require.False(t, p.CloudflareBypass)
	require.Equal(t, fetch.DefaultProfile().Headers, p.Headers)
	require.Empty(t, p.AllowedDomain)
}

func TestFetchProfileAllowedDomain(t *testing.T) {
	t.Setenv("ALLOWED_DOMAIN", "wowhead.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "wowhead.com", cfg.FetchProfile().AllowedDomain)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
