// Package debug provides logging and timing utilities shared by the akgo packages.
//
// Most of the binding runs on the application thread, but event callbacks are
// dispatched on the audio engine's own threads; every Logger method is safe to
// call from either side. Level checks do not take a lock, so a message
// below the threshold costs an atomic load on the audio thread.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int32

const (
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for lifecycle messages: module init and term, bank loads.
	LogLevelInfo
	// LogLevelWarn is for engine refusals the caller recovers from.
	LogLevelWarn
	// LogLevelError is for failures contained by the binding, such as a
	// panicking callback closure.
	LogLevelError
	// LogLevelFatal is for broken engine contracts; logging at this level
	// panics.
	LogLevelFatal
	// LogLevelOff disables all logging.
	LogLevelOff
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL", "OFF"}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name such as "warn" to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch n := strings.ToUpper(strings.TrimSpace(name)); n {
	case "":
		return LogLevelInfo, nil
	case "WARNING":
		return LogLevelWarn, nil
	default:
		for i, s := range levelNames {
			if s == n {
				return LogLevel(i), nil
			}
		}
	}
	return LogLevelInfo, fmt.Errorf("debug: unknown log level %q", name)
}

// Flags select the parts of a line written before the message.
const (
	FlagTime   = 1 << iota // wall clock with milliseconds
	FlagCaller             // file:line of the logging call
	FlagLevel              // [LEVEL]
	FlagPrefix             // [prefix]
)

const DefaultFlags = FlagTime | FlagCaller | FlagLevel | FlagPrefix

// Logger is a levelled logger writing one line per message.
type Logger struct {
	level atomic.Int32

	mu     sync.Mutex
	out    io.Writer
	prefix string
	flags  int
	// dropped counts lines whose write failed.
	dropped uint64
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, "akgo", DefaultFlags))
}

// New returns a logger at LogLevelInfo.
func New(out io.Writer, prefix string, flags int) *Logger {
	l := &Logger{out: out, prefix: prefix, flags: flags}
	l.level.Store(int32(LogLevelInfo))
	return l
}

// OpenFile returns a logger appending to path, creating its directory, and
// the file to close once the logger is no longer used.
func OpenFile(path, prefix string, flags int) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("debug: log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug: log file: %w", err)
	}
	return New(f, prefix, flags), f, nil
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// SetLevel sets the minimum level written.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

func (l *Logger) Level() LogLevel {
	return LogLevel(l.level.Load())
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	threshold := l.Level()
	return threshold != LogLevelOff && level >= threshold
}

func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	l.prefix = prefix
	l.mu.Unlock()
}

func (l *Logger) SetFlags(flags int) {
	l.mu.Lock()
	l.flags = flags
	l.mu.Unlock()
}

// Dropped returns the number of lines lost to write errors.
func (l *Logger) Dropped() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// log formats and writes one line. depth is the number of frames between
// the caller of interest and log.
func (l *Logger) log(depth int, level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	var sb strings.Builder
	if l.flags&FlagTime != 0 {
		sb.WriteString(time.Now().Format("15:04:05.000 "))
	}
	if l.flags&FlagLevel != 0 {
		sb.WriteString("[" + level.String() + "] ")
	}
	if l.flags&FlagPrefix != 0 && l.prefix != "" {
		sb.WriteString("[" + l.prefix + "] ")
	}
	if l.flags&FlagCaller != 0 {
		if _, file, line, ok := runtime.Caller(depth + 1); ok {
			fmt.Fprintf(&sb, "%s:%d: ", filepath.Base(file), line)
		}
	}
	sb.WriteString(strings.TrimSuffix(msg, "\n"))
	sb.WriteByte('\n')

	if _, err := io.WriteString(l.out, sb.String()); err != nil {
		l.dropped++
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(1, LogLevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(1, LogLevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(1, LogLevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(1, LogLevelError, format, args...) }

// Fatal logs at LogLevelFatal and panics with the message, whatever the
// level.
func (l *Logger) Fatal(format string, args ...any) {
	l.log(1, LogLevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Default returns the package logger used by the functions below.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package logger and returns the previous one.
func SetDefault(l *Logger) *Logger {
	return defaultLogger.Swap(l)
}

func SetOutput(w io.Writer)       { Default().SetOutput(w) }
func SetLevel(level LogLevel)     { Default().SetLevel(level) }
func Enabled(level LogLevel) bool { return Default().Enabled(level) }

func Debug(format string, args ...any) { Default().log(1, LogLevelDebug, format, args...) }
func Info(format string, args ...any)  { Default().log(1, LogLevelInfo, format, args...) }
func Warn(format string, args ...any)  { Default().log(1, LogLevelWarn, format, args...) }
func Error(format string, args ...any) { Default().log(1, LogLevelError, format, args...) }

func Fatal(format string, args ...any) {
	Default().log(1, LogLevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}
