package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mortgage-calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, constants.DefaultAnnualRate, conf.Defaults.AnnualRate)
	assert.Equal(t, constants.DefaultClosingCostRate, conf.Defaults.ClosingCostRate)
	assert.Equal(t, constants.DefaultInsuranceRate, conf.Defaults.InsuranceRate)
	assert.Equal(t, 0, conf.Defaults.LoanTermYears)
	assert.False(t, conf.Validation.AllowDownpaymentAbovePrice)
	assert.False(t, conf.Validation.RejectNegativeDownpayment)
	assert.False(t, conf.Output.Schedule)

	assert.Equal(t, scenario.StandardOptions(), conf.ResolverOptions())
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
defaults:
  annualRate: 0.055
  closingCostRate: 0.03
  insuranceRate: 0.004
  loanTermYears: 30
validation:
  allowDownpaymentAbovePrice: true
  rejectNegativeDownpayment: true
output:
  schedule: true
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
	assert.Equal(t, 0.055, conf.Defaults.AnnualRate)
	assert.Equal(t, 0.03, conf.Defaults.ClosingCostRate)
	assert.Equal(t, 0.004, conf.Defaults.InsuranceRate)
	assert.Equal(t, 30, conf.Defaults.LoanTermYears)
	assert.True(t, conf.Validation.AllowDownpaymentAbovePrice)
	assert.True(t, conf.Validation.RejectNegativeDownpayment)
	assert.True(t, conf.Output.Schedule)

	opts := conf.ResolverOptions()
	assert.Equal(t, scenario.Defaults{
		AnnualRate:      0.055,
		ClosingCostRate: 0.03,
		InsuranceRate:   0.004,
		LoanTermYears:   30,
	}, opts.Defaults)
	assert.Equal(t, scenario.Policy{
		AllowDownpaymentAbovePrice: true,
		RejectNegativeDownpayment:  true,
	}, opts.Policy)
}

func TestLoadConfigurationPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  insuranceRate: 0.005
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, 0.005, conf.Defaults.InsuranceRate)
	assert.Equal(t, constants.DefaultClosingCostRate, conf.Defaults.ClosingCostRate)
	assert.Equal(t, "warn", conf.Logging.Level)
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("MORTGAGE_DEFAULTS_ANNUALRATE", "0.06")
	t.Setenv("MORTGAGE_VALIDATION_REJECTNEGATIVEDOWNPAYMENT", "true")
	t.Setenv("MORTGAGE_LOGGING_LEVEL", "error")

	path := writeConfig(t, `
defaults:
  annualRate: 0.03
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, 0.06, conf.Defaults.AnnualRate)
	assert.True(t, conf.Validation.RejectNegativeDownpayment)
	assert.Equal(t, "error", conf.Logging.Level)
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		path     string
	}{
		{
			name: "Non-existent config file",
			path: filepath.Join(os.TempDir(), "does-not-exist", "mortgage-calc.yaml"),
		},
		{
			name:     "Rate as percentage",
			contents: "defaults:\n  annualRate: 4.5\n",
		},
		{
			name:     "Negative insurance rate",
			contents: "defaults:\n  insuranceRate: -0.1\n",
		},
		{
			name:     "Negative loan term",
			contents: "defaults:\n  loanTermYears: -5\n",
		},
		{
			name:     "Unknown log format",
			contents: "logging:\n  format: xml\n",
		},
		{
			name:     "Unknown log level",
			contents: "logging:\n  level: verbose\n",
		},
		{
			name:     "Malformed YAML",
			contents: "defaults: [unterminated\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeConfig(t, tt.contents)
			}
			conf, err := LoadConfiguration(path)
			assert.Error(t, err)
			assert.Nil(t, conf)
		})
	}
}

func TestLocateConfiguration(t *testing.T) {
	assert.Equal(t, "custom.yaml", LocateConfiguration("custom.yaml"))

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "", LocateConfiguration(""))

	require.NoError(t, os.WriteFile(constants.DefaultConfigFile, []byte("output:\n  schedule: true\n"), 0o644))
	assert.Equal(t, constants.DefaultConfigFile, LocateConfiguration(""))
}
