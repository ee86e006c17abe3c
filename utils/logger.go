package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a LOG_LEVEL value to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled, colored logging throughout the application.
type Logger struct {
	out    *log.Logger
	err    *log.Logger
	min    Level
	prefix string
}

// NewLogger creates a Logger writing info/debug/warn to stdout and errors to
// stderr, dropping anything below min.
func NewLogger(min Level) *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr, min)
}

// NewLoggerTo is NewLogger with explicit writers.
func NewLoggerTo(out, errOut io.Writer, min Level) *Logger {
	return &Logger{
		out: log.New(out, "", 0),
		err: log.New(errOut, "", 0),
		min: min,
	}
}

// With returns a child logger whose lines carry an extra "[prefix]" tag.
func (l *Logger) With(prefix string) *Logger {
	child := *l
	if child.prefix != "" {
		child.prefix += " "
	}
	child.prefix += "[" + prefix + "]"
	return &child
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) emit(dst *log.Logger, lvl Level, tag, format string, args ...any) {
	if lvl < l.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	dst.Printf("[%s] %s %s\n", l.timestamp(), tag, msg)
}

func (l *Logger) Debug(format string, args ...any) {
	l.emit(l.out, LevelDebug, "\033[36mDEBUG\033[0m", format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.emit(l.out, LevelInfo, "\033[32mINFO\033[0m ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.emit(l.out, LevelWarn, "\033[33mWARN\033[0m ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.emit(l.err, LevelError, "\033[31mERROR\033[0m", format, args...)
}

// Capture logs an unexpected error and forwards it to Sentry. Without a
// configured Sentry client the forward is a no-op.
func (l *Logger) Capture(err error, format string, args ...any) {
	if err == nil {
		return
	}
	l.Error(format+": %v", append(args, err)...)
	sentry.CaptureException(err)
}
