// Package config loads the application configuration that wires the CLI
// to the translation core: the history bound, log level, and dictionary
// manifest path. It mirrors the teacher's viper-backed layered config
// loader.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// HardHistoryBound is the translation core's non-negotiable ceiling; a
// config requesting more is clamped, never rejected.
const HardHistoryBound = 100

// Config is the unmarshalled application configuration.
type Config struct {
	HistoryBound int    `mapstructure:"history_bound"`
	LogLevel     string `mapstructure:"log_level"`
	ManifestPath string `mapstructure:"manifest_path"`
}

// Load reads steno.yml/steno.yaml from the given search paths (or just
// the current directory if none are given), applying defaults first and
// environment overrides (STENO_*) last. A missing config file is not an
// error; a malformed one is. The second return value reports whether
// HistoryBound was clamped, so the caller can log a warning.
func Load(searchPaths ...string) (*Config, bool, error) {
	v := viper.New()

	v.SetDefault("history_bound", HardHistoryBound)
	v.SetDefault("log_level", "info")
	v.SetDefault("manifest_path", "dictionaries.toml")

	v.SetConfigName("steno")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		v.AddConfigPath(".")
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("STENO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, false, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	clamped := clamp(&cfg)

	return &cfg, clamped, nil
}

// clamp enforces the translation core's hard history bound; it never
// returns an error, only a logged-by-the-caller adjustment.
func clamp(cfg *Config) (clamped bool) {
	if cfg.HistoryBound > HardHistoryBound || cfg.HistoryBound <= 0 {
		cfg.HistoryBound = HardHistoryBound
		return true
	}
	return false
}
