package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("KEEP_JWT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "keep-server.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 100, cfg.RateLimit.Rate)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("KEEP_JWT_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	t.Setenv("KEEP_JWT_SECRET", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
db_path: /var/lib/keep/server.db
log_level: debug
jwt:
  secret: file-secret
  access_token_ttl: 5m
rate_limit:
  rate: 10
  window: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/lib/keep/server.db", cfg.DBPath)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL)
	// Values the file omits keep their defaults.
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.RateLimit.Rate)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  secret: file-secret\n"), 0o600))

	t.Setenv("KEEP_JWT_SECRET", "env-secret")
	t.Setenv("KEEP_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.name}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.name)
	}
}
