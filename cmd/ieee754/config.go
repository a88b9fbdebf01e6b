package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/stewi1014/ieee754/encio"
)

const (
	defaultPrefix = "IEEE 754 Representation: "
	defaultValue  = 3.14
)

// Config is the structure of the optional YAML config file.
type Config struct {
	Values   []float64 `yaml:"values"`
	Prefix   *string   `yaml:"prefix"`
	Output   string    `yaml:"output"` // empty is stdout
	LogLevel string    `yaml:"log_level"`
}

// DefaultConfig encodes the sample value to stdout.
func DefaultConfig() *Config {
	prefix := defaultPrefix
	return &Config{
		Values:   []float64{defaultValue},
		Prefix:   &prefix,
		LogLevel: "info",
	}
}

// LoadConfig reads and parses a config file, filling anything it leaves unset from DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", encio.NewError(encio.ErrMalformed, err.Error(), "LoadConfig"))
	}

	def := DefaultConfig()
	if len(cfg.Values) == 0 {
		cfg.Values = def.Values
	}
	if cfg.Prefix == nil {
		cfg.Prefix = def.Prefix
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, encio.NewError(encio.ErrBadConfig, fmt.Sprintf("unknown log_level %q", c.LogLevel), "Config.Level")
	}
}
