// Package config provides configuration management for checktree using Viper.
package config

import (
	"io/fs"
	"sync"

	"github.com/spf13/viper"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/paths"
	"github.com/thoreinstein/checktree/internal/report"
	"github.com/thoreinstein/checktree/internal/stringrules"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CHECKTREE"

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	Format  string `mapstructure:"format" yaml:"format"`
	Tree    string `mapstructure:"tree" yaml:"tree"`
	Detail  bool   `mapstructure:"detail" yaml:"detail"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Format:  string(report.FormatText),
		Tree:    stringrules.DefaultTree,
	}
}

var initOnce sync.Once

// Init initializes Viper with default configuration. Calls after the first
// are no-ops until Reset.
func Init() {
	initOnce.Do(setup)
}

// Reset clears all Viper state, including a config file set by Load, so the
// next Init starts from scratch.
func Reset() {
	viper.Reset()
	initOnce = sync.Once{}
}

func setup() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("format", d.Format)
	viper.SetDefault("tree", d.Tree)
	viper.SetDefault("detail", d.Detail)
}

// Load reads and validates the configuration.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && errors.As(err, &notFound):
			// implicit load without a file uses defaults
		case errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if info := Validate(&cfg); info != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s:\n%s", info.Name, info.Message)
	}

	return &cfg, nil
}
