package validation

import "testing"

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{"Debug", "debug", false},
		{"Info", "info", false},
		{"Warn", "warn", false},
		{"Warning alias", "warning", false},
		{"Error", "error", false},
		{"Empty", "", true},
		{"Case sensitive", "DEBUG", true},
		{"Unknown", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error but got none", tt.level)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogLevel(%q) unexpected error: %v", tt.level, err)
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
		{"Console", "console", false},
		{"JSON", "json", false},
		{"Empty", "", true},
		{"Case sensitive", "JSON", true},
		{"Leading/trailing spaces", " json ", true},
		{"XML format not supported", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}
