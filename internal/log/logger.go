package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brickyard-dev/brick/internal/domain"
)

// Level is the severity threshold of a Logger.
type Level = domain.LogLevel

const (
	LevelDebug = domain.LogDebug
	LevelInfo  = domain.LogInfo
	LevelWarn  = domain.LogWarn
	LevelError = domain.LogError
)

// LevelName returns the upper-case name of a level.
func LevelName(l Level) string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled lines through logrus. The threshold can be raised or
// lowered at any time with SetLevel.
type Logger struct {
	base *logrus.Logger
	file *os.File
}

// New creates a logger writing to out.
func New(out io.Writer, minLevel Level) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(lineFormatter{})
	base.SetLevel(toLogrus(minLevel))
	return &Logger{base: base}
}

// NewWithFile creates a logger writing to out and appending to the file at
// logPath, which is created with owner-only permissions.
func NewWithFile(out io.Writer, logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := New(io.MultiWriter(out, file), minLevel)
	l.file = file
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// SetLevel changes the verbosity threshold.
func (l *Logger) SetLevel(level Level) {
	l.base.SetLevel(toLogrus(level))
}

// Level returns the verbosity threshold.
func (l *Logger) Level() Level {
	switch l.base.GetLevel() {
	case logrus.DebugLevel, logrus.TraceLevel:
		return LevelDebug
	case logrus.InfoLevel:
		return LevelInfo
	case logrus.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// Debug writes a diagnostic message.
func (l *Logger) Debug(format string, args ...any) {
	l.base.Debugf(format, args...)
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.base.Infof(format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.base.Warnf(format, args...)
}

// Error writes an error.
func (l *Logger) Error(format string, args ...any) {
	l.base.Errorf(format, args...)
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// lineFormatter renders "LEVEL: message" lines.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(e.Level.String())
	if e.Level == logrus.WarnLevel {
		level = "WARN"
	}
	return []byte(level + ": " + strings.TrimRight(e.Message, "\n") + "\n"), nil
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) SetLevel(_ Level)         {}
func (NopLogger) Level() Level             { return LevelError }
func (NopLogger) Close() error             { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
