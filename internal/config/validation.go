// internal/config/validation.go - Configuration validation
package config

import (
	"fmt"
	"strings"
)

// Validate validates the configuration structure and values.
func Validate(config *Config) error {
	if err := validateZoom(&config.Zoom); err != nil {
		return fmt.Errorf("zoom configuration invalid: %w", err)
	}

	if err := validateOutput(&config.Output); err != nil {
		return fmt.Errorf("output configuration invalid: %w", err)
	}

	if err := validateBatch(&config.Batch); err != nil {
		return fmt.Errorf("batch configuration invalid: %w", err)
	}

	if err := validateLogging(&config.Logging); err != nil {
		return fmt.Errorf("logging configuration invalid: %w", err)
	}

	return nil
}

// validateZoom validates the default zoom range.
func validateZoom(config *ZoomConfig) error {
	if config.Min > config.Max {
		return fmt.Errorf("zoom.min (%d) must not exceed zoom.max (%d)", config.Min, config.Max)
	}
	if config.Max > 15 {
		return fmt.Errorf("zoom.max must not exceed 15, got %d", config.Max)
	}
	return nil
}

// validateOutput validates output configuration parameters.
func validateOutput(config *OutputConfig) error {
	if strings.TrimSpace(config.LayerName) == "" {
		return fmt.Errorf("layer_name cannot be empty")
	}
	if config.Directory == "" {
		return fmt.Errorf("directory is required")
	}
	return nil
}

// validateBatch validates batch processing configuration parameters.
func validateBatch(config *BatchConfig) error {
	if config.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if config.Concurrency > 1000 {
		return fmt.Errorf("concurrency must not exceed 1000")
	}
	return nil
}

// validateLogging validates logging configuration parameters.
func validateLogging(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	if !contains(validLevels, config.Level) {
		return fmt.Errorf("invalid log level: %s, must be one of %v", config.Level, validLevels)
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, config.Format) {
		return fmt.Errorf("invalid log format: %s, must be one of %v", config.Format, validFormats)
	}

	validOutputs := []string{"stdout", "stderr", "file"}
	if !contains(validOutputs, config.Output) {
		return fmt.Errorf("invalid log output: %s, must be one of %v", config.Output, validOutputs)
	}

	return nil
}

// contains checks if a string slice contains a specific string (case-insensitive).
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
