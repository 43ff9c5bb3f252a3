// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLogLevel checks if the log level is one the logger understands.
// The alias "warning" is accepted alongside "warn".
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("expected log level of debug, info, warn, or error, got %s", level)
}

// ValidateLogFormat checks if the log format selects a supported encoder.
func ValidateLogFormat(format string) error {
	switch format {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("expected log format of console or json, got %s", format)
}
