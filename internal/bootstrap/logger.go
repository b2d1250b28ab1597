package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/logger"
)

// SetupLogger initializes the process logger from the configuration. With
// LOG_DIR set it also writes a timestamped session file there, pruning old
// sessions first. The returned file (nil without LOG_DIR) is closed by the
// caller.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		SaveSlot:    cfg.SaveSlot,
		AddSource:   cfg.Environment == logger.EnvironmentDev,
	}

	var (
		w       io.Writer = os.Stderr
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stderr, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Debug("Configuration loaded",
		"state_backend", cfg.StateBackend,
		"save_slot", cfg.SaveSlot,
		"tick_interval", cfg.TickInterval,
		"save_interval", cfg.SaveInterval,
		"addr", cfg.ListenAddr())

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn("Failed to delete old log file", "file", name, "error", err)
		}
	}
}
