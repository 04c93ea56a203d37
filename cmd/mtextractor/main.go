package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mtreplays/extractor/internal/config"
	"github.com/mtreplays/extractor/internal/influx"
	"github.com/mtreplays/extractor/internal/logging"
	"github.com/mtreplays/extractor/internal/payload"
	"github.com/mtreplays/extractor/internal/stats"
	"github.com/mtreplays/extractor/internal/storage"
	"github.com/mtreplays/extractor/internal/worker"
)

// Version can be set at build time via ldflags.
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	AppName string = "mtextractor"
)

var (
	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger
)

func main() {
	sessionStart := time.Now()

	configDir := "."
	if v := os.Getenv("MTEXTRACTOR_CONFIG_DIR"); v != "" {
		configDir = v
	}
	configErr := config.Load(configDir)

	SlogManager = logging.NewSlogManager()
	logFile := openLogFile(sessionStart)
	SlogManager.Setup(logFile, config.GetString("logLevel"))
	Logger = SlogManager.Logger()
	if logFile != nil {
		defer logFile.Close()
	}

	if configErr != nil {
		Logger.Warn("No config file found, using defaults", "error", configErr)
	}

	Logger.Info("Starting up", "version", Version, "buildDate", BuildDate)

	paths, err := collectReplayFiles(os.Args[1:])
	if err != nil {
		Logger.Error("Failed to collect input files", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.mtreplay | directory>...\n", AppName)
		os.Exit(2)
	}

	backend, err := storage.NewBackend(config.Storage(), Logger)
	if err != nil {
		Logger.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		Logger.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			Logger.Error("Failed to close storage backend", "error", err)
		}
	}()

	var influxManager *influx.Manager
	if config.GetBool("influx.enabled") {
		zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
		backupPath := logging.LogFilePath(viper.GetString("logsDir"), AppName+".influx_backup", sessionStart) + ".gz"
		influxManager = influx.NewManager(zl, backupPath)
		if err := influxManager.Connect(); err != nil {
			Logger.Warn("InfluxDB disabled", "error", err)
			influxManager = nil
		} else {
			defer influxManager.Close()
		}
	}

	manager := worker.NewManager(worker.Dependencies{
		Resolver:   payload.NewResolver(Logger),
		Normalizer: stats.NewNormalizer(Logger),
		Backend:    backend,
		Logger:     Logger,
		Influx:     influxManager,
	})

	results := manager.ProcessBatch(context.Background(), paths, config.GetInt("workers"))
	failed := printSummary(results)

	Logger.Info("Done",
		"processed", len(results)-failed,
		"failed", failed,
		"elapsed", time.Since(sessionStart).Round(time.Millisecond),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

// openLogFile creates the session log file, or returns nil when the
// logs directory cannot be used (console-only logging).
func openLogFile(sessionStart time.Time) *os.File {
	logsDir := viper.GetString("logsDir")
	if logsDir == "" {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil
	}
	f, err := os.Create(logging.LogFilePath(logsDir, AppName, sessionStart))
	if err != nil {
		return nil
	}
	return f
}
