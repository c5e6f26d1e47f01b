package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/canamort/mortgage-schedule/internal/config"
	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/output"
	"github.com/canamort/mortgage-schedule/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, report, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	params, err := conf.Mortgage.ToParameters()
	if err != nil {
		logger.Fatal("failed to convert mortgage configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Run the amortization to get the Schedule.
	schedule, err := engine.Run(logger, params)
	if err != nil {
		logger.Fatal("failed to compute amortization schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.TableFormat(os.Stdout, schedule)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, schedule)
	case constants.OutputFormatReport:
		output.ReportFormat(os.Stdout, params, schedule)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(os.Stdout, schedule); err != nil {
			logger.Fatal("failed to serialize schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
