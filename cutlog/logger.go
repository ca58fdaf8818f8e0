package cutlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level is a log severity, ordered least to most severe.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
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

const timeLayout = "2006-01-02 15:04:05.000"

// Logger is the dual console/file sink of spec.md §6: every line is
// prefixed "[YYYY-MM-DD HH:MM:SS.mmm]" and mirrored to stdout and a
// truncated log file.
type Logger struct {
	out   io.Writer
	file  io.WriteCloser
	level Level
	now   func() time.Time
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithPrefix sets the log file path (opened in truncate mode as
// "<prefix>.log"); the zero value disables the file sink.
func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		if prefix == "" {
			return
		}
		f, err := os.Create(prefix + ".log")
		if err != nil {
			return
		}
		l.file = f
	}
}

// WithLevel sets the minimum level a message must meet to be emitted.
func WithLevel(lv Level) Option {
	return func(l *Logger) { l.level = lv }
}

// WithNow overrides the clock, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithWriter overrides the console sink (defaults to os.Stdout), for tests
// that want to capture console output without touching the real stdout.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// New builds a Logger applying opts over the defaults: stdout-only, level
// Info, system clock.
func New(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout, level: LevelInfo, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Close releases the file sink, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

func (l *Logger) emit(lv Level, format string, args ...interface{}) {
	if lv < l.level {
		return
	}
	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format(timeLayout), lv, fmt.Sprintf(format, args...))
	io.WriteString(l.out, line)
	if l.file != nil {
		io.WriteString(l.file, line)
	}
}

func (l *Logger) Info(format string, args ...interface{})  { l.emit(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.emit(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.emit(LevelError, format, args...) }
