package utils

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bookie/config"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration. Log output goes to
// stdout and to <LOG_DIR>/bookie.log; the directory is created if absent.
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if dir := config.AppConfig.LogDir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create log directory %s: %v", dir, err)
		}
		cfg.OutputPaths = []string{"stdout", filepath.Join(dir, "bookie.log")}
	}

	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

// SyncLogger flushes any buffered log entries. Called once at shutdown.
func SyncLogger() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
