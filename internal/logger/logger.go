// Package logger provides the global zerolog logger for avm.
//
// Console output goes to stderr in human-readable form; file output, when
// enabled through settings, is JSON with lumberjack rotation.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance. It is a no-op until Init or
	// InitWithFile is called, so library use without CLI setup stays quiet.
	Log = zerolog.Nop()

	// fileWriter is the rotating file output, nil when file logging is off.
	fileWriter *lumberjack.Logger
)

// LoggingConfig holds file-logging settings. It mirrors
// config.LoggingSettings but is duplicated here to avoid a circular import.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled reports whether file logging is enabled. Defaults to true
// when not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the rotation size in MB, defaulting to 10.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the retention age in days, defaulting to 7.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the number of rotated files kept, defaulting to 3.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init initializes the global logger with console-only output.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with console output plus a rotating
// log file under logsDir. An empty logsDir or disabled config falls back to
// console-only logging.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, "avm.log"),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	// Console is human-readable, file is JSON.
	multi := io.MultiWriter(consoleWriter(), fileWriter)
	Log = zerolog.New(multi).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the rotating file writer if one is open. Call on
// program shutdown.
func CloseFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// GetLogFilePath returns the current log file path, or "" when file logging
// is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event { return Log.Debug() }

// Info starts an info-level log event.
func Info() *zerolog.Event { return Log.Info() }

// Warn starts a warning-level log event.
func Warn() *zerolog.Event { return Log.Warn() }

// Error starts an error-level log event.
func Error() *zerolog.Event { return Log.Error() }

// WithLevel starts a log event at an arbitrary level. Used where severity is
// configuration-driven.
func WithLevel(l zerolog.Level) *zerolog.Event { return Log.WithLevel(l) }
