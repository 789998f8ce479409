// Package config defines the data structures related to configuration and
// includes functions for loading it from file and environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calc.
type Configuration struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Defaults   DefaultsConfig   `mapstructure:"defaults"`
	Validation ValidationConfig `mapstructure:"validation"`
	Output     OutputConfig     `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// DefaultsConfig holds the values assumed for omitted inputs.
type DefaultsConfig struct {
	AnnualRate      float64 `mapstructure:"annualRate"`
	ClosingCostRate float64 `mapstructure:"closingCostRate"`
	InsuranceRate   float64 `mapstructure:"insuranceRate"`
	LoanTermYears   int     `mapstructure:"loanTermYears"`
}

// ValidationConfig holds the cross-field checks applied to scenarios.
type ValidationConfig struct {
	AllowDownpaymentAbovePrice bool `mapstructure:"allowDownpaymentAbovePrice"`
	RejectNegativeDownpayment  bool `mapstructure:"rejectNegativeDownpayment"`
}

// OutputConfig holds output configuration options
type OutputConfig struct {
	Schedule bool `mapstructure:"schedule"` // print the amortization schedule
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("defaults.annualRate", constants.DefaultAnnualRate)
	v.SetDefault("defaults.closingCostRate", constants.DefaultClosingCostRate)
	v.SetDefault("defaults.insuranceRate", constants.DefaultInsuranceRate)
	v.SetDefault("defaults.loanTermYears", constants.DefaultLoanTermYears)
	v.SetDefault("validation.allowDownpaymentAbovePrice", false)
	v.SetDefault("validation.rejectNegativeDownpayment", false)
	v.SetDefault("output.schedule", false)
}

// LocateConfiguration returns the explicit path if given, otherwise the
// default config file when it exists in the working directory, otherwise "".
func LocateConfiguration(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
		return constants.DefaultConfigFile
	}
	return ""
}

// LoadConfiguration builds the configuration from built-in defaults, the
// optional YAML file at configPath, a .env file and MORTGAGE_* environment
// variables, in increasing order of precedence.
func LoadConfiguration(configPath string) (*Configuration, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file, %s", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks that configured defaults and logging settings are usable.
func (c *Configuration) Validate() error {
	rates := []struct {
		key   string
		value float64
	}{
		{"defaults.annualRate", c.Defaults.AnnualRate},
		{"defaults.closingCostRate", c.Defaults.ClosingCostRate},
		{"defaults.insuranceRate", c.Defaults.InsuranceRate},
	}
	for _, rate := range rates {
		if err := validation.ValidateFraction(rate.key, rate.value); err != nil {
			return err
		}
	}

	if err := validation.ValidateLoanTermYears("defaults.loanTermYears", c.Defaults.LoanTermYears); err != nil {
		return err
	}
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return validation.ValidateLogFormat(c.Logging.Format)
}

// ResolverOptions converts the configuration into scenario resolver options.
func (c *Configuration) ResolverOptions() scenario.Options {
	return scenario.Options{
		Defaults: scenario.Defaults{
			AnnualRate:      c.Defaults.AnnualRate,
			ClosingCostRate: c.Defaults.ClosingCostRate,
			InsuranceRate:   c.Defaults.InsuranceRate,
			LoanTermYears:   c.Defaults.LoanTermYears,
		},
		Policy: scenario.Policy{
			AllowDownpaymentAbovePrice: c.Validation.AllowDownpaymentAbovePrice,
			RejectNegativeDownpayment:  c.Validation.RejectNegativeDownpayment,
		},
	}
}
