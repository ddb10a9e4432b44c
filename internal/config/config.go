// internal/config/config.go - Configuration management
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration. This tool reads
// local GeoJSON and writes local tiles, so there is no server, remote
// source, or network configuration to carry.
type Config struct {
	Zoom    ZoomConfig    `mapstructure:"zoom"`
	Output  OutputConfig  `mapstructure:"output"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ZoomConfig contains a default zoom range. It is loaded and validated, but
// the generate and batch commands take min/max zoom as required arguments
// and do not read it.
type ZoomConfig struct {
	Min uint32 `mapstructure:"min"`
	Max uint32 `mapstructure:"max"`
}

// OutputConfig contains tile and metadata output configuration.
type OutputConfig struct {
	LayerName      string `mapstructure:"layer_name"`
	Directory      string `mapstructure:"directory"`
	Gzip           bool   `mapstructure:"gzip"`
	PrettyMetadata bool   `mapstructure:"pretty_metadata"`
}

// BatchConfig contains multi-file batch processing configuration.
type BatchConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	FailOnError bool `mapstructure:"fail_on_error"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Progress bool   `mapstructure:"progress"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load loads configuration from defaults, an optional .tilegen.yaml config
// file, and environment variables, in viper's usual precedence order.
func Load() (*Config, error) {
	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options.
func setDefaults() {
	viper.SetDefault("zoom.min", 0)
	viper.SetDefault("zoom.max", 14)

	viper.SetDefault("output.layer_name", "default")
	viper.SetDefault("output.directory", ".")
	viper.SetDefault("output.gzip", false)
	viper.SetDefault("output.pretty_metadata", true)

	viper.SetDefault("batch.concurrency", 4)
	viper.SetDefault("batch.fail_on_error", false)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
	viper.SetDefault("logging.progress", true)
	viper.SetDefault("logging.verbose", false)
}
