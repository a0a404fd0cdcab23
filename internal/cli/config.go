package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the optional configuration file settings.
// Command-line flags take precedence over file values.
type Config struct {
	BaseURL       string `toml:"base_url"`        // web service base URL (empty = production)
	CacheTTLHours int    `toml:"cache_ttl_hours"` // response cache lifetime
	NoCache       bool   `toml:"no_cache"`        // disable caching entirely
	RedisAddr     string `toml:"redis_addr"`      // optional Redis cache backend (host:port)
	RedisDB       int    `toml:"redis_db"`        // Redis database number
}

// DefaultConfig returns the built-in defaults: production base URL and a
// 24-hour file cache.
func DefaultConfig() *Config {
	return &Config{
		CacheTTLHours: 24,
	}
}

// LoadConfig reads a TOML config file. With an empty path, the default
// location (~/.config/pride/config.toml) is tried and a missing file simply
// yields the defaults; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.CacheTTLHours <= 0 {
		cfg.CacheTTLHours = DefaultConfig().CacheTTLHours
	}
	return cfg, nil
}

// defaultConfigPath returns the config location using XDG standard
// (~/.config/pride/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
