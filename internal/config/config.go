package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/config.yml"

// Config holds the overall configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Registry  RegistryConfig  `yaml:"registry"`
	Probe     ProbeConfig     `yaml:"probe"`
	Cache     CacheConfig     `yaml:"cache"`
	Health    HealthConfig    `yaml:"health"`
	Chainlist ChainlistConfig `yaml:"chainlist"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// RegistryConfig controls where descriptors come from.
type RegistryConfig struct {
	OverlayDir      string `yaml:"overlayDir"`
	DisableBuiltins bool   `yaml:"disableBuiltins"`
}

// ProbeConfig holds configuration for RPC endpoint probing.
type ProbeConfig struct {
	ConnectTimeoutMs   int64   `yaml:"connectTimeoutMs"`
	CallTimeoutMs      int64   `yaml:"callTimeoutMs"`
	MaxRetries         uint    `yaml:"maxRetries"`
	RetryDelayMs       int64   `yaml:"retryDelayMs"`
	RateLimitPerSecond float64 `yaml:"rateLimitPerSecond"`
	Burst              int     `yaml:"burst"`
	MaxConcurrent      int     `yaml:"maxConcurrent"`
}

// CacheConfig holds configuration for caching probe results.
type CacheConfig struct {
	TTLMinutes             int `yaml:"ttlMinutes"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// HealthConfig controls background health checks.
type HealthConfig struct {
	WarmOnStart bool `yaml:"warmOnStart"`
}

// ChainlistConfig holds the configuration for the Chainlist importer.
type ChainlistConfig struct {
	URL       string `yaml:"url"`
	TimeoutMs int64  `yaml:"timeoutMs"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Probe.ConnectTimeoutMs <= 0 {
		c.Probe.ConnectTimeoutMs = 5000
	}
	if c.Probe.CallTimeoutMs <= 0 {
		c.Probe.CallTimeoutMs = 5000
	}
	if c.Probe.MaxRetries == 0 {
		c.Probe.MaxRetries = 2
		logrus.Debugf("Probe.MaxRetries not set, defaulting to %d", c.Probe.MaxRetries)
	}
	if c.Probe.RetryDelayMs <= 0 {
		c.Probe.RetryDelayMs = 250
	}
	if c.Probe.RateLimitPerSecond <= 0 {
		c.Probe.RateLimitPerSecond = 5
	}
	if c.Probe.Burst <= 0 {
		c.Probe.Burst = 2
	}
	if c.Probe.MaxConcurrent <= 0 {
		c.Probe.MaxConcurrent = 16
	}
	if c.Cache.TTLMinutes <= 0 {
		c.Cache.TTLMinutes = 5
		logrus.Debugf("Cache.TTLMinutes not set, defaulting to %d minutes", c.Cache.TTLMinutes)
	}
	if c.Cache.CleanupIntervalMinutes <= 0 {
		c.Cache.CleanupIntervalMinutes = 10
	}
	if c.Chainlist.URL == "" {
		c.Chainlist.URL = "https://chainid.network/chains.json"
	}
	if c.Chainlist.TimeoutMs <= 0 {
		c.Chainlist.TimeoutMs = 15000
	}
}

// Validate rejects configurations that cannot work even after defaults.
func (c *Config) Validate() error {
	if c.Registry.DisableBuiltins && c.Registry.OverlayDir == "" {
		return fmt.Errorf("registry.disableBuiltins requires registry.overlayDir")
	}
	if c.Registry.OverlayDir != "" {
		info, err := os.Stat(c.Registry.OverlayDir)
		if err != nil {
			return fmt.Errorf("registry.overlayDir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("registry.overlayDir %s is not a directory", c.Registry.OverlayDir)
		}
	}
	return nil
}
