// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a config string to a Level. Accepted spellings are
// off/quiet/none, normal/info and verbose/debug, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet", "none":
		return LevelOff, nil
	case "", "normal", "info":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	level  Level
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger

	// Named children share the root's level and writers.
	root   *Logger
	prefix string
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	flags := log.Ltime

	l := &Logger{
		level:  level,
		debug:  log.New(out, "[DBG] ", flags),
		info:   log.New(out, "[INF] ", flags),
		warn:   log.New(out, "[WRN] ", flags),
		errLog: log.New(out, "[ERR] ", flags),
	}
	l.root = l
	return l
}

// Named returns a child logger that tags every line with [component].
// Nested names are joined with a dot.
func (l *Logger) Named(component string) *Logger {
	name := component
	if l.prefix != "" {
		name = strings.TrimSuffix(strings.TrimPrefix(l.prefix, "["), "] ") + "." + component
	}
	return &Logger{
		debug:  l.debug,
		info:   l.info,
		warn:   l.warn,
		errLog: l.errLog,
		root:   l.root,
		prefix: "[" + name + "] ",
	}
}

// SetLevel changes the log level at runtime. Named children follow.
func (l *Logger) SetLevel(level Level) {
	r := l.root
	r.mu.Lock()
	defer r.mu.Unlock()
	r.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	r := l.root
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.level
}

func (l *Logger) output(at Level, out *log.Logger, format string, args []any) {
	r := l.root
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.level >= at {
		out.Output(3, l.prefix+fmt.Sprintf(format, args...))
	}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.output(LevelVerbose, l.debug, format, args)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.output(LevelNormal, l.info, format, args)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.output(LevelNormal, l.warn, format, args)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.output(LevelNormal, l.errLog, format, args)
}
