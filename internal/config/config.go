package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a quest session.
// Values are populated from .quest.yaml, QUEST_* env vars, and CLI flags.
type Config struct {
	SaveFile   string `mapstructure:"save_file"`
	LedgerPath string `mapstructure:"ledger_path"` // empty disables the ledger
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
	Color      bool   `mapstructure:"color"`
	Seed       uint64 `mapstructure:"seed"` // 0 draws a random seed
	Verbose    bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("save_file", "quest.txt")
	viper.SetDefault("ledger_path", ".quest/ledger.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")
	viper.SetDefault("color", true)
	viper.SetDefault("seed", 0)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.SaveFile == "" {
		return Config{}, errors.New("save_file must not be empty")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. Verbose forces debug.
func (c Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
