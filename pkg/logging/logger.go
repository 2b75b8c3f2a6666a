// Package logging provides structured logging for the command stage, render
// stage, and device adapter.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed diagnostic information.
	LevelDebug Level = iota
	// LevelInfo is for lifecycle transitions.
	LevelInfo
	// LevelWarn is for non-fatal failures.
	LevelWarn
	// LevelError is for failed operations that do not stop the engine.
	LevelError
	// LevelFatal is for errors the engine cannot continue past.
	LevelFatal
	// LevelOff disables all logging.
	LevelOff
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses the level names used in the configuration document
// ("trace" is accepted as an alias for "debug").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Logger writes leveled, formatted log lines to one or more writers.
type Logger struct {
	mu      sync.Mutex
	output  io.Writer
	level   Level
	prefix  string
	flags   int
	enabled bool
}

// Flags control output formatting.
const (
	FlagTime     = 1 << iota // include a timestamp
	FlagShortFile            // include "file.go:123"
	FlagLevel                // include "[INFO]"
	FlagPrefix               // include "[prefix]"
)

// DefaultFlags match the formatting used across the engine's stages.
const DefaultFlags = FlagTime | FlagLevel | FlagPrefix

// Config mirrors the configuration document's logging section.
type Config struct {
	Level       string `yaml:"level"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFile     string `yaml:"log_file"`
	LogToStdout bool   `yaml:"log_to_stdout"`
}

// New creates a logger writing to output with the given prefix and flags.
func New(output io.Writer, prefix string, flags int) *Logger {
	return &Logger{
		output:  output,
		prefix:  prefix,
		flags:   flags,
		level:   LevelInfo,
		enabled: true,
	}
}

// NewFromConfig builds a logger from a logging.Config, fanning out to
// stdout and/or a file as requested. If neither is set, the logger discards
// everything.
func NewFromConfig(cfg Config, prefix string) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	if cfg.LogToStdout {
		writers = append(writers, os.Stdout)
	}
	if cfg.LogToFile {
		if cfg.LogFile == "" {
			return nil, fmt.Errorf("logging: log_to_file set but log_file is empty")
		}
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		writers = append(writers, f)
	}

	var out io.Writer = io.Discard
	if len(writers) == 1 {
		out = writers[0]
	} else if len(writers) > 1 {
		out = io.MultiWriter(writers...)
	}

	l := New(out, prefix, DefaultFlags)
	l.level = level
	return l, nil
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetEnabled enables or disables the logger entirely.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// With returns a copy of the logger with a different prefix, sharing the
// same output and level. Used to tag log lines per engine stage.
func (l *Logger) With(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		output:  l.output,
		level:   l.level,
		prefix:  prefix,
		flags:   l.flags,
		enabled: l.enabled,
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level || l.level == LevelOff {
		return
	}

	var sb strings.Builder

	if l.flags&FlagTime != 0 {
		sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000 "))
	}
	if l.flags&FlagLevel != 0 {
		fmt.Fprintf(&sb, "[%s] ", level.String())
	}
	if l.flags&FlagPrefix != 0 && l.prefix != "" {
		fmt.Fprintf(&sb, "[%s] ", l.prefix)
	}
	if l.flags&FlagShortFile != 0 {
		_, file, line, ok := runtime.Caller(2)
		if ok {
			fmt.Fprintf(&sb, "%s:%d: ", filepath.Base(file), line)
		}
	}

	msg := fmt.Sprintf(format, args...)
	sb.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		sb.WriteByte('\n')
	}

	l.output.Write([]byte(sb.String()))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }

// Info logs a lifecycle-transition message.
func (l *Logger) Info(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }

// Warn logs a non-fatal failure.
func (l *Logger) Warn(format string, args ...interface{}) { l.log(LevelWarn, format, args...) }

// Error logs a failed operation.
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

// Fatal logs an unrecoverable error and panics.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}
