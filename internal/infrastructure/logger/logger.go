package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a new logger writing to the console and, when logDir is
// non-empty, to logDir/bot.log as well.
func New(level string, logDir string) zerolog.Logger {
	// Set log level
	logLevel := parseLogLevel(level)
	zerolog.SetGlobalLevel(logLevel)

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout}}

	if logDir != "" {
		if file, err := openLogFile(logDir); err == nil {
			writers = append(writers, file)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger
}

// openLogFile opens (creating as needed) the append-only service log file
func openLogFile(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, "bot.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// parseLogLevel parses log level string to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
