// Package logging provides a process-wide structured logger with
// optional file rotation.
//
// The zero configuration writes human-readable lines to stderr at info
// level. InitLogger reconfigures the logger with a rotating file sink
// and stamps every line with a per-invocation run id so console and
// file output correlate.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logger is the package-wide logger. Reconfigured by InitLogger.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// InitLogger configures the package logger. Console output always goes
// to stderr; when logFile is non-empty, a rotating JSON copy is kept
// there as well. Rotation units are megabytes and days. Unknown levels
// fall back to info.
func InitLogger(logFile string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}
	if logFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		})
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Str("run", xid.New().String()).Logger().
		Level(parseLevel(level))
}

// SetLogLevel adjusts the minimum level of the package logger.
// Unknown levels fall back to info.
func SetLogLevel(level string) {
	logger = logger.Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug logs a debug message with alternating key-value pairs.
func Debug(msg string, kv ...any) { logger.Debug().Fields(kv).Msg(msg) }

// Info logs an info message with alternating key-value pairs.
func Info(msg string, kv ...any) { logger.Info().Fields(kv).Msg(msg) }

// Warn logs a warning with alternating key-value pairs.
func Warn(msg string, kv ...any) { logger.Warn().Fields(kv).Msg(msg) }

// Error logs an error with alternating key-value pairs.
func Error(msg string, kv ...any) { logger.Error().Fields(kv).Msg(msg) }

// SetLoggerForTest replaces the package logger. Test use only.
func SetLoggerForTest(l zerolog.Logger) { logger = l }
