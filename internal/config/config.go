package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr       = ":8501"
	DefaultSessionTTL = 30 * time.Minute
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig          `yaml:"server"`
	Logging LoggingConfig         `yaml:"logging"`
	Rules   map[string]RuleConfig `yaml:"rules"`
}

// ServerConfig configures the web form host
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	SessionTTL string `yaml:"session_ttl"` // Go duration, e.g. "30m"
}

// LoggingConfig configures the logger
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// RuleConfig represents configuration for a specific rule
type RuleConfig struct {
	Disabled bool `yaml:"disabled"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Rules:  make(map[string]RuleConfig),
	}
}

// LoadConfig loads configuration from a YAML file, then applies
// environment overrides
func LoadConfig(path string) (*Config, error) {
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

	cfg.applyEnvOverrides()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	if _, err := cfg.SessionTTL(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SessionTTL returns the parsed idle lifetime of a session
func (c *Config) SessionTTL() (time.Duration, error) {
	if c.Server.SessionTTL == "" {
		return DefaultSessionTTL, nil
	}
	ttl, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session_ttl %q: %w", c.Server.SessionTTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("invalid session_ttl %q: must be positive", c.Server.SessionTTL)
	}
	return ttl, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CODEREVIEW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CODEREVIEW_SESSION_TTL"); v != "" {
		c.Server.SessionTTL = v
	}
	if v := os.Getenv("CODEREVIEW_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = debug
		}
	}
}
