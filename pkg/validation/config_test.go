package validation

import "testing"

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		expectErr bool
	}{
		{"Zero", 0, false},
		{"Default APR", 0.045, false},
		{"Just below one", 0.999, false},
		{"One", 1, true},
		{"Percentage instead of fraction", 4.5, true},
		{"Negative", -0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction("defaults.annualRate", tt.value)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateFraction(%v) expected error but got none", tt.value)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateFraction(%v) unexpected error: %v", tt.value, err)
			}
		})
	}
}

func TestValidateLoanTermYears(t *testing.T) {
	tests := []struct {
		name      string
		years     int
		expectErr bool
	}{
		{"Disabled", 0, false},
		{"Thirty years", 30, false},
		{"Upper bound", 100, false},
		{"Above upper bound", 101, true},
		{"Negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoanTermYears("defaults.loanTermYears", tt.years)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLoanTermYears(%d) expected error but got none", tt.years)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLoanTermYears(%d) unexpected error: %v", tt.years, err)
			}
		})
	}
}
