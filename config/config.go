// Package config loads the settings of the nutri command.
//
// Settings are read from an optional yaml file and can be overridden by
// environment variables prefixed with NUTRI, e.g. NUTRI_BACKEND=sqlite.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Storage backends.
const (
	File   = "file"
	SQLite = "sqlite"
)

type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	Backend  string `mapstructure:"backend"`
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DataDir:  ".nutrilog",
		Backend:  File,
		LogLevel: "warn",
	}
}

// Load reads the configuration file at path. If path is empty, "nutri.yaml"
// is looked up in the current directory and it is fine if it does not exist.
func Load(path string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("log_level", d.LogLevel)

	if path == "" {
		v.SetConfigName("nutri")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("NUTRI")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the backend and the log level.
func (c Config) Validate() error {
	var errs error
	if c.Backend != File && c.Backend != SQLite {
		errs = errors.Join(errs, fmt.Errorf("unknown backend %q, want %q or %q", c.Backend, File, SQLite))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid log level: %w", err))
	}
	if c.DataDir == "" {
		errs = errors.Join(errs, errors.New("data_dir is empty"))
	}
	return errs
}

// DatabasePath is the sqlite file in the data directory.
func (c Config) DatabasePath() string { return filepath.Join(c.DataDir, "nutrilog.db") }

// Logger builds a development logger writing to stderr at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	return zc.Build()
}
