package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePopup(config)...)
	validationErrors = append(validationErrors, validateDismiss(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validatePopup(config *Config) []string {
	var validationErrors []string
	if config.Popup.MinWidth < 0 || config.Popup.MinHeight < 0 {
		validationErrors = append(validationErrors, "popup.min_width and popup.min_height must be non-negative")
	}
	if config.Popup.DefaultWidth < 0 || config.Popup.DefaultHeight < 0 {
		validationErrors = append(validationErrors, "popup.default_width and popup.default_height must be non-negative")
	}
	return validationErrors
}

func validateDismiss(config *Config) []string {
	if config.Dismiss.HistorySize < 1 || config.Dismiss.HistorySize > maxHistorySize {
		return []string{fmt.Sprintf("dismiss.history_size must be between 1 and %d", maxHistorySize)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
