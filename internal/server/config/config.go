// Package config loads the server configuration from a yaml file with
// environment variable overrides for deployment secrets.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration
type Config struct {
	Addr      string          `yaml:"addr"`
	DBPath    string          `yaml:"db_path"`
	LogLevel  string          `yaml:"log_level"`
	Version   string          `yaml:"-"`
	JWT       JWTConfig       `yaml:"jwt"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// JWTConfig configures token issuing
type JWTConfig struct {
	Secret          string        `yaml:"secret"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
}

// RateLimitConfig configures the per-IP request budget
type RateLimitConfig struct {
	Rate   int           `yaml:"rate"`
	Window time.Duration `yaml:"window"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		DBPath:   "keep-server.db",
		LogLevel: "info",
		JWT: JWTConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Rate:   100,
			Window: time.Minute,
		},
	}
}

// Load reads the yaml config at path when path is non-empty, then
// applies environment overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (set jwt.secret or KEEP_JWT_SECRET)")
	}

	return cfg, nil
}

// applyEnv overrides file values from the environment. Secrets are
// expected to arrive this way in deployments.
func applyEnv(cfg *Config) {
	if v := os.Getenv("KEEP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("KEEP_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KEEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KEEP_JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
}

// SlogLevel maps the configured level name to a slog level,
// defaulting to info for unknown names
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
