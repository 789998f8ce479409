package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/mortgage-calc/internal/amortization"
	"github.com/iwvelando/mortgage-calc/internal/config"
	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/output"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "warn"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// inputFlag binds a repeatable CLI flag to a scenario field.
type inputFlag struct {
	field     scenario.Field
	shorthand string
	usage     string
	values    *[]string
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS]\n\n", flags.Name())
	fmt.Fprint(w, flags.FlagUsages())
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("mortgage-calc", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	inputs := []*inputFlag{
		{field: scenario.FieldYears, shorthand: "y", usage: "term of loan in years; repeat to compare terms"},
		{field: scenario.FieldAPR, shorthand: "r", usage: "annual percentage rate as a fraction, e.g. 0.045"},
		{field: scenario.FieldTaxes, shorthand: "t", usage: "property taxes per year"},
		{field: scenario.FieldPrice, shorthand: "p", usage: "purchase price"},
		{field: scenario.FieldFunds, shorthand: "f", usage: "funds available now"},
		{field: scenario.FieldClosingCosts, shorthand: "c", usage: "closing costs (default: share of purchase price)"},
		{field: scenario.FieldInsurance, shorthand: "i", usage: "insurance per year (default: share of purchase price)"},
		{field: scenario.FieldDownpayment, shorthand: "d", usage: "downpayment (default: funds - renovations - closing costs)"},
		{field: scenario.FieldRenovations, shorthand: "R", usage: "renovation costs (default: 0)"},
	}
	for _, input := range inputs {
		input.values = flags.StringArrayP(string(input.field), input.shorthand, nil, input.usage)
	}
	schedule := flags.BoolP("schedule", "s", false, "print the amortization schedule for each scenario")
	configLocation := flags.String("config", "", "path to configuration file (default "+constants.DefaultConfigFile+" if present)")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	help := flags.BoolP("help", "h", false, "print help")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr, flags)
		return constants.ExitUsage
	}
	if *help {
		printUsage(stdout, flags)
		return constants.ExitOK
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", flags.Args())
		printUsage(stderr, flags)
		return constants.ExitUsage
	}

	conf, err := config.LoadConfiguration(config.LocateConfiguration(*configLocation))
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration\", \"error\": \"%v\"}\n", err)
		return constants.ExitFailure
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return constants.ExitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	raw := scenario.NewRawParameters()
	for _, input := range inputs {
		raw.Add(input.field, *input.values...)
	}

	resolution, err := scenario.NewResolver(logger, conf.ResolverOptions()).Resolve(raw)
	if err != nil {
		logger.Debug("failed to resolve scenarios",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintf(stderr, "error: %v\n", err)
		var inputErr *scenario.InputError
		if errors.As(err, &inputErr) && errors.Is(err, scenario.ErrMissingRequiredInput) {
			fmt.Fprintf(stderr, "try --%s, see --help\n", inputErr.Field)
		}
		return constants.ExitUsage
	}

	reports, err := amortization.NewEngine(logger).Evaluate(context.Background(), resolution.Scenarios)
	if err != nil {
		logger.Error("failed to evaluate scenarios",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return constants.ExitFailure
	}

	output.Notices(stdout, resolution.Notices)
	output.PrettyFormat(stdout, reports, output.Options{Schedule: *schedule || conf.Output.Schedule})
	return constants.ExitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
