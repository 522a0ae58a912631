package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables with this prefix override file values, e.g.
// TRAINS_HTTP_PORT=9000.
const EnvPrefix = "TRAINS_"

type Config struct {
	HTTPPort        string `json:"http_port"`
	DatabaseURL     string `json:"database_url"`
	RedisAddr       string `json:"redis_addr"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds"`
	LogLevel        string `json:"log_level"`
	SeedPath        string `json:"seed_path"`
}

// Load reads configuration in increasing precedence: .env (when present),
// the YAML file at path (optional, skipped when path is empty) and TRAINS_
// environment variables. Defaults are applied before validation.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	k := koanf.New(".")
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil, fmt.Errorf("load config: unsupported config format %q", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load config: environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults fills unset fields. DATABASE_URL and PORT are honoured as
// unprefixed fallbacks.
func (c *Config) SetDefaults() {
	if c.HTTPPort == "" {
		c.HTTPPort = Get("PORT", "8080")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = Get("DATABASE_URL", "")
	}
	if c.CacheTTLSeconds == 0 {
		c.CacheTTLSeconds = 600
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SeedPath == "" {
		c.SeedPath = "data/seeds/scenarios.json"
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTPPort) == "" {
		return errors.New("http_port is required")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative, got %d", c.CacheTTLSeconds)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Get returns the environment variable key, or fallback when it is unset or
// empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
