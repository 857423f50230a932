package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the decode service.
const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 7689
	DefaultInstance = "inode-decode"
)

// Config holds the decode service configuration.
type Config struct {
	// Host is the listen address.
	Host string `yaml:"host"`
	// Port is the listen port.
	Port int `yaml:"port"`
	// LogLevel selects zap verbosity (debug, info, warn, error).
	// Empty means silent.
	LogLevel string `yaml:"log_level"`
	// Announce configures mDNS service announcement.
	Announce Announce `yaml:"announce"`
}

// Announce configures zeroconf registration of the service.
type Announce struct {
	// Enabled turns mDNS announcement on.
	Enabled bool `yaml:"enabled"`
	// Instance is the advertised instance name.
	Instance string `yaml:"instance"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Announce: Announce{Instance: DefaultInstance},
	}
}

// Load reads a YAML configuration file and applies defaults for absent
// fields. An empty path returns the defaults; a missing file is an
// error, since the path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Announce.Instance == "" {
		cfg.Announce.Instance = DefaultInstance
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
