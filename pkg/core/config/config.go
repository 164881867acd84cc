// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the relay client and CLI
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete client configuration
type Config struct {
	Relay   RelayConfig   `toml:"relay"`
	GRPC    GRPCConfig    `toml:"grpc"`
	Logging LoggingConfig `toml:"logging"`
}

// RelayConfig holds the JSON-RPC relay endpoint settings
type RelayConfig struct {
	BaseURL string   `toml:"base_url"`
	UUID    string   `toml:"uuid"` // attribution id, optional
	Timeout Duration `toml:"timeout"`
}

// GRPCConfig holds the binary-protocol endpoint settings
type GRPCConfig struct {
	Address           string   `toml:"address"` // empty disables the gRPC path
	ConnectTimeout    Duration `toml:"connect_timeout"`
	KeepaliveInterval Duration `toml:"keepalive_interval"`
	KeepaliveTimeout  Duration `toml:"keepalive_timeout"`
	MaxAttempts       int      `toml:"max_attempts"`
	RetryBaseDelay    Duration `toml:"retry_base_delay"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

// Duration wraps time.Duration for TOML text parsing ("10s", "100ms")
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration with built-in defaults
func Default() *Config {
	return &Config{
		Relay: RelayConfig{
			BaseURL: "https://mainnet.block-engine.example.net/api/v1",
			Timeout: Duration{30 * time.Second},
		},
		GRPC: GRPCConfig{
			ConnectTimeout:    Duration{10 * time.Second},
			KeepaliveInterval: Duration{30 * time.Second},
			KeepaliveTimeout:  Duration{20 * time.Second},
			MaxAttempts:       5,
			RetryBaseDelay:    Duration{100 * time.Millisecond},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadOrDefault loads the config from the given path, from BERELAY_CONFIG,
// from well-known locations, or falls back to built-in defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if env := os.Getenv("BERELAY_CONFIG"); env != "" {
		return Load(env)
	}

	defaultPaths := []string{
		"./berelay.toml",
		filepath.Join(os.Getenv("HOME"), ".config/berelay/berelay.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets environment variables override file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BERELAY_URL"); v != "" {
		c.Relay.BaseURL = v
	}
	if v := os.Getenv("BERELAY_UUID"); v != "" {
		c.Relay.UUID = v
	}
	if v := os.Getenv("BERELAY_GRPC_ADDR"); v != "" {
		c.GRPC.Address = v
	}
	if v := os.Getenv("BERELAY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.Relay.BaseURL == "" {
		return fmt.Errorf("relay.base_url must not be empty")
	}
	if c.GRPC.MaxAttempts < 1 {
		return fmt.Errorf("grpc.max_attempts must be at least 1, got %d", c.GRPC.MaxAttempts)
	}
	if c.GRPC.RetryBaseDelay.Duration <= 0 {
		return fmt.Errorf("grpc.retry_base_delay must be positive")
	}
	return nil
}
