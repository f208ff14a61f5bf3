package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/iwvelando/kpi-dashboard/internal/config"
	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/logging"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/output"
	"github.com/iwvelando/kpi-dashboard/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	windowFlag := flag.String("window", "", "time window override: 7d, 14d, 30d, all")
	seedFlag := flag.String("seed", "", "seed override")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, xlsx")
	outputFileFlag := flag.String("output-file", "", "write output to this file instead of stdout")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := loadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	if *windowFlag != "" {
		conf.Window = *windowFlag
	}
	seed := conf.Data.Seed
	if *seedFlag != "" {
		seed, err = strconv.ParseInt(*seedFlag, 10, 64)
		if err != nil {
			logger.Fatal("invalid seed",
				zap.String("op", "main"),
				zap.String("seed", *seedFlag),
				zap.Error(err),
			)
		}
	}
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	outputFile := conf.Output.File
	if *outputFileFlag != "" {
		outputFile = *outputFileFlag
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	req, err := conf.DashboardRequest(seed)
	if err != nil {
		logger.Fatal("failed to resolve configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	view, err := dashboard.Build(logger, req)
	if err != nil {
		logger.Fatal("failed to build dashboard",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := writeOutput(view, outputFormat, outputFile); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}

	logger.Debug("dashboard written",
		zap.String("op", "main"),
		zap.Int64("seed", seed),
		zap.String("window", view.Window),
		zap.String("format", outputFormat),
	)
}

// loadConfiguration falls back to defaults when the default config file is
// absent; an explicitly named file must exist.
func loadConfiguration(path string) (*config.Configuration, error) {
	if path == constants.DefaultConfigFile {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return config.LoadConfiguration(path)
}

func writeOutput(view *dashboard.View, format, file string) (err error) {
	if format == constants.OutputFormatXLSX && file == "" {
		file = constants.ExportFileXLSX
	}

	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = f
	}

	switch format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(w, view)
		return nil
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, view.Series)
	case constants.OutputFormatXLSX:
		return output.XlsxFormat(w, view.Series)
	}
	return fmt.Errorf("unsupported output format %s", format)
}
