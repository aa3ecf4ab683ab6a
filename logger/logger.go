package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LogLevel log level
type LogLevel int

const (
	// Silent silent log level
	Silent LogLevel = iota + 1
	// Error error log level
	Error
	// Warn warn log level
	Warn
	// Info info log level
	Info
)

// ErrUnknownLevel level name not recognised by ParseLevel
var ErrUnknownLevel = errors.New("unknown log level")

func (level LogLevel) String() string {
	switch level {
	case Silent:
		return "silent"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	}
	return fmt.Sprintf("LogLevel(%d)", int(level))
}

// ParseLevel parses silent, error, warn or info, case insensitive
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return Silent, nil
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "info":
		return Info, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Config logger config
type Config struct {
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// Interface logger interface
type Interface interface {
	LogMode(LogLevel) Interface
	Info(context.Context, string, ...interface{})
	Warn(context.Context, string, ...interface{})
	Error(context.Context, string, ...interface{})
	Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error)
}

var (
	// Discard logger will print nothing
	Discard Interface = discard{}
	// Default zerolog console logger, warnings and slow statements only
	Default = NewZerologLoggerWithConfig(Config{
		LogLevel:      Warn,
		SlowThreshold: 200 * time.Millisecond,
	})
)

type discard struct{}

func (d discard) LogMode(LogLevel) Interface {
	return d
}

func (discard) Info(context.Context, string, ...interface{}) {}

func (discard) Warn(context.Context, string, ...interface{}) {}

func (discard) Error(context.Context, string, ...interface{}) {}

func (discard) Trace(context.Context, time.Time, func() (string, int64), error) {}

// trace one statement round trip, rows is -1 when unknown
type trace struct {
	Level   LogLevel
	SQL     string
	Rows    int64
	Elapsed time.Duration
	Slow    bool
	Err     error
}

// newTrace decides whether a round trip is logged at all and at which level;
// fc is only evaluated for logged statements
func newTrace(level LogLevel, slowThreshold time.Duration, begin time.Time, fc func() (string, int64), err error) (trace, bool) {
	if level <= Silent {
		return trace{}, false
	}

	t := trace{Elapsed: time.Since(begin), Err: err}
	switch {
	case err != nil:
		t.Level = Error
	case slowThreshold != 0 && t.Elapsed > slowThreshold:
		t.Level = Warn
		t.Slow = true
	case level >= Info:
		t.Level = Info
	default:
		return trace{}, false
	}

	t.SQL, t.Rows = fc()
	return t, true
}

func (t trace) duration() string {
	return fmt.Sprintf("%.3fms", float64(t.Elapsed.Nanoseconds())/1e6)
}

func (t trace) message() string {
	switch {
	case t.Err != nil:
		return "SQL failed"
	case t.Slow:
		return "SLOW SQL executed"
	}
	return "SQL executed"
}

// format renders printf style arguments into the message
func format(msg string, data []interface{}) string {
	if len(data) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, data...)
}
