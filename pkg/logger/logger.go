package logger

import (
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LevelWarn LogLevel = iota
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelPrefixes = map[LogLevel]string{
	LevelWarn:  "WARN: ",
	LevelInfo:  "INFO: ",
	LevelDebug: "DEBUG: ",
	LevelTrace: "TRACE: ",
}

// Logger writes leveled messages. Info and Warn are always printed, Debug
// requires verbose mode and Trace requires LevelTrace.
type Logger struct {
	*log.Logger
	level     LogLevel
	isVerbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

// New logs to stderr by default so report output on stdout stays clean.
func New(options ...Option) *Logger {
	l := &Logger{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  LevelInfo,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *Logger) SetVerbose(verbose bool) {
	l.isVerbose = verbose
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) Warn(format string, args ...any) {
	l.printf(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.printf(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if l.isVerbose || l.level >= LevelDebug {
		l.printf(LevelDebug, format, args...)
	}
}

func (l *Logger) Trace(format string, args ...any) {
	if l.level >= LevelTrace {
		l.printf(LevelTrace, format, args...)
	}
}

func (l *Logger) printf(level LogLevel, format string, args ...any) {
	l.Logger.Printf(levelPrefixes[level]+format, args...)
}

func (l *Logger) Fatal(format string, args ...any) {
	l.Logger.Fatalf("FATAL: "+format, args...)
}
