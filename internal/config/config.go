// Package config loads the salat configuration from a YAML file with
// defaults for every key. The merge priority is CLI flags > config
// file > defaults; the flag merge happens in the cli package.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all user-configurable settings.
type Config struct {
	Location   LocationConfig `mapstructure:"location"`
	Method     int            `mapstructure:"method"`
	TimeFormat string         `mapstructure:"time_format"` // "12h" or "24h"
	Cache      CacheConfig    `mapstructure:"cache"`
	Server     ServerConfig   `mapstructure:"server"`
	Log        LogConfig      `mapstructure:"log"`
}

// LocationConfig fixes the query location. An address takes precedence
// over coordinates; with neither set, the CLI auto-detects.
type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Address   string  `mapstructure:"address"`
}

// CacheConfig configures the persistent cache store.
type CacheConfig struct {
	// Path of the SQLite store; empty means the default under the user
	// cache directory.
	Path string `mapstructure:"path"`
	// Disabled turns persistent caching off entirely.
	Disabled bool `mapstructure:"disabled"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the config file at configPath, or searches the standard
// locations when it is empty. A missing file is not an error; defaults
// apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/salat")
		v.AddConfigPath("/etc/salat")
	}

	v.SetDefault("location.latitude", 0)
	v.SetDefault("location.longitude", 0)
	v.SetDefault("location.address", "")
	v.SetDefault("method", 3)
	v.SetDefault("time_format", "24h")
	v.SetDefault("cache.path", "")
	v.SetDefault("cache.disabled", false)
	v.SetDefault("server.port", 8046)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
