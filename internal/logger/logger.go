// Package logger builds the zap loggers used by the command line tool.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the log encoding.
type Format string

const (
	// FormatConsole is a human readable, colored line format.
	FormatConsole Format = "CONSOLE"
	// FormatJSON is one JSON object per entry.
	FormatJSON Format = "JSON"
)

// Environment variables that override command line settings.
const (
	EnvLevel  = "LOGGING_LEVEL"
	EnvFormat = "LOGGING_FORMAT"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown names map to
// warn so that a CLI run stays quiet by default.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// ParseFormat converts a format name. Unknown names yield FormatConsole.
func ParseFormat(name string) Format {
	if Format(strings.ToUpper(strings.TrimSpace(name))) == FormatJSON {
		return FormatJSON
	}
	return FormatConsole
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a logger writing to stderr. Non-empty LOGGING_LEVEL and
// LOGGING_FORMAT take precedence over the arguments.
func New(level string, format string) *zap.Logger {
	if v := os.Getenv(EnvLevel); v != "" {
		level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		format = v
	}
	return NewTo(os.Stderr, ParseLevel(level), ParseFormat(format))
}

// NewTo creates a logger writing to w.
func NewTo(w io.Writer, level zapcore.Level, format Format) *zap.Logger {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var enc zapcore.Encoder
	if format == FormatJSON {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = timeEncoder
		cfg.ConsoleSeparator = " | "
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
