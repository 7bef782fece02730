package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "givehope_session", cfg.Session.CookieName)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL())
	assert.Equal(t, time.Hour, cfg.SessionSweepInterval())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
session:
  ttl: "24h"
  cookie_name: "custom_session"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, "custom_session", cfg.Session.CookieName)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "supersecret")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("SESSION_SECURE", "true")

	path := writeConfigFile(t, `
server:
  port: "9090"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.Session.Secure)
}

func TestLoadConfigRequiresAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin password")
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "supersecret")
	t.Setenv("SESSION_TTL", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
