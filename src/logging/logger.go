// Package logging is a small leveled logger shared by the loader, renderer and binaries.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
	return l, nil
}

// Logger writes "[LEVEL] message" lines through a stdlib log.Logger.
type Logger struct {
	level int32
	out   *log.Logger
}

// New returns a Logger writing to w at info level.
func New(w io.Writer) *Logger {
	return &Logger{
		level: int32(LevelInfo),
		out:   log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(lv Level) { atomic.StoreInt32(&l.level, int32(lv)) }

// Level returns the current minimum level.
func (l *Logger) Level() Level { return Level(atomic.LoadInt32(&l.level)) }

func (l *Logger) logf(lv Level, format string, args ...interface{}) {
	if l.Level() > lv {
		return
	}
	// Without args the message is printed as is, so a literal % in an already formatted
	// string does not turn into %!x(MISSING).
	if len(args) == 0 {
		l.out.Printf("[%s] %s", lv, format)
		return
	}
	l.out.Printf("[%s] %s", lv, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, a ...interface{}) { l.logf(LevelDebug, format, a...) }
func (l *Logger) Infof(format string, a ...interface{})  { l.logf(LevelInfo, format, a...) }
func (l *Logger) Warnf(format string, a ...interface{})  { l.logf(LevelWarn, format, a...) }
func (l *Logger) Errorf(format string, a ...interface{}) { l.logf(LevelError, format, a...) }

var std atomic.Pointer[Logger]

func init() { std.Store(New(os.Stderr)) }

// Default returns the process-wide logger used by the package-level helpers.
func Default() *Logger { return std.Load() }

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) { std.Store(l) }

// SetLogLevel parses s and applies it to the default logger. Unknown names are ignored.
func SetLogLevel(s string) {
	if lv, err := ParseLevel(s); err == nil {
		Default().SetLevel(lv)
	}
}

func Debugf(format string, a ...interface{}) { Default().logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { Default().logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { Default().logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { Default().logf(LevelError, format, a...) }

// TimeTrack logs the time elapsed since start at debug level. Use with defer.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
