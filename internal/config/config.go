package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Dataset  DatasetConfig
	Slicer   SlicerConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// DatasetConfig selects which dataset the host serves.
type DatasetConfig struct {
	Name string
}

// SlicerConfig seeds the slicer's persisted object properties on first run.
// After that the host's own property store is authoritative.
type SlicerConfig struct {
	TextSize         float64 `mapstructure:"text_size"`
	DefaultSelection string  `mapstructure:"default_selection"`
}

// Load reads configuration from file and env. Env var overrides use prefix VSLICE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "vslice", "vslice.db"))
	v.SetDefault("dataset.name", "")
	v.SetDefault("slicer.text_size", 8)
	v.SetDefault("slicer.default_selection", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VSLICE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vslice"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VSLICE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
