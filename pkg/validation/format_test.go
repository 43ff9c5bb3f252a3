package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Case sensitive - CSV uppercase",
			format:    "CSV",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{
			name:      "Debug level",
			level:     "debug",
			expectErr: false,
		},
		{
			name:      "Info level",
			level:     "info",
			expectErr: false,
		},
		{
			name:      "Warn level",
			level:     "warn",
			expectErr: false,
		},
		{
			name:      "Warning alias",
			level:     "warning",
			expectErr: false,
		},
		{
			name:      "Error level",
			level:     "error",
			expectErr: false,
		},
		{
			name:      "Unsupported level",
			level:     "trace",
			expectErr: true,
		},
		{
			name:      "Empty level",
			level:     "",
			expectErr: true,
		},
		{
			name:      "Case sensitive",
			level:     "INFO",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateLogLevel(%s) expected error but got none", tt.level)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateLogLevel(%s) unexpected error = %v", tt.level, err)
				}
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Console format",
			format:    "console",
			expectErr: false,
		},
		{
			name:      "JSON format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Unsupported format",
			format:    "logfmt",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateLogFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateLogFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}
