package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iwvelando/loan-analysis/internal/cohort"
	"github.com/iwvelando/loan-analysis/internal/config"
	"github.com/iwvelando/loan-analysis/internal/dataset"
	"github.com/iwvelando/loan-analysis/internal/export"
	"github.com/iwvelando/loan-analysis/internal/report"
	"github.com/iwvelando/loan-analysis/pkg/constants"
	"github.com/iwvelando/loan-analysis/pkg/output"
	"github.com/iwvelando/loan-analysis/pkg/validation"
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
		level = "info" // Default to info level
	}

	// Parse log level
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

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
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
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	watchFlag := flag.Bool("watch", false, "reload and re-render when the dataset file changes")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
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
		outputFormat = constants.OutputFormatPretty // Default to pretty format
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

	// Load the loan records into the initial snapshot.
	snap, err := dataset.Load(logger, conf.Dataset.Path)
	if err != nil {
		logger.Fatal("failed to load dataset",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	store := dataset.NewStore(snap)

	engine := cohort.NewEngine(logger, conf.Risk.Thresholds())
	opts := report.Options{
		Criteria:      conf.Filters.Criteria(),
		HistogramBins: conf.Histogram.BinCount(),
	}

	// Exports run alongside stdout output when configured. Invalid formats
	// were already surfaced as a configuration warning.
	exportsEnabled := conf.Export.Enabled()
	if exportsEnabled {
		if err := validation.ValidateExportFormats(conf.Export.Formats); err != nil {
			exportsEnabled = false
		}
	}
	var writer *export.Writer
	if exportsEnabled {
		writer = export.NewWriter(logger, conf.Export.OutputDirectory())
	}

	render := func(snap *dataset.Snapshot) {
		result, err := report.GetReport(logger, engine, snap, opts)
		if err != nil {
			logger.Error("failed to build report",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return
		}

		// Handle output.
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(result)
		case constants.OutputFormatCSV:
			output.CsvFormat(result)
		}

		if writer != nil {
			written, err := writer.Write(result, conf.Export.Formats)
			if err != nil {
				logger.Error("failed to write exports",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return
			}
			logger.Info("wrote exports",
				zap.String("op", "main"),
				zap.Strings("files", written),
			)
		}
	}
	render(store.Snapshot())

	if !conf.Dataset.Watch && !*watchFlag {
		return
	}

	// Watch mode: rebuild the report whenever the dataset file changes.
	watcher, err := dataset.NewWatcher(logger, store, conf.Dataset.Path, render)
	if err != nil {
		logger.Fatal("failed to start dataset watcher",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = watcher.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching dataset for changes",
		zap.String("op", "main"),
		zap.String("path", conf.Dataset.Path),
	)
	if err := watcher.Run(ctx); err != nil {
		logger.Error("dataset watcher stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
