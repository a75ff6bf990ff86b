package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the analyzer's configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	// DataDir is the directory holding the marker table files.
	DataDir string `yaml:"data_dir"`
	// DefaultThreshold applies when a request supplies none. A pointer, so
	// an explicit 0 in the file survives the defaulting pass.
	DefaultThreshold *float64      `yaml:"default_threshold"`
	Logging          LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// Threshold returns the configured default threshold.
func (c *Config) Threshold() float64 {
	if c.DefaultThreshold == nil {
		return 0.5
	}
	return *c.DefaultThreshold
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func validate(cfg *Config) error {
	if cfg.DefaultThreshold != nil {
		t := *cfg.DefaultThreshold
		if t < 0 || t > 1 {
			return fmt.Errorf("default_threshold %v is outside [0, 1]", t)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.DefaultThreshold == nil {
		t := 0.5
		cfg.DefaultThreshold = &t
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
