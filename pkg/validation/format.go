package validation

import (
	"fmt"
)

// ValidateLogLevel checks if the log level is one the logger understands.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks if the log format is one of the supported encoders.
func ValidateLogFormat(format string) error {
	if format != "console" && format != "json" {
		return fmt.Errorf("expected log format of console or json, got %s", format)
	}
	return nil
}
