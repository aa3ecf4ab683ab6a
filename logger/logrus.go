package logger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chela-orm/chela/utils"
)

// LogrusLogger implements Interface using logrus
type LogrusLogger struct {
	Logger        *logrus.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewLogrusLogger creates a new logger using logrus
func NewLogrusLogger(logger *logrus.Logger, config Config) Interface {
	return &LogrusLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

// LogMode sets the log level
func (l *LogrusLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *LogrusLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.entry(ctx).Info(format(msg, data))
	}
}

func (l *LogrusLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.entry(ctx).Warn(format(msg, data))
	}
}

func (l *LogrusLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.entry(ctx).Error(format(msg, data))
	}
}

// Trace logs one statement round trip
func (l *LogrusLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	t, ok := newTrace(l.LogLevel, l.SlowThreshold, begin, fc, err)
	if !ok {
		return
	}

	fields := logrus.Fields{
		"duration": t.duration(),
		"sql":      t.SQL,
	}
	if t.Rows != -1 {
		fields["rows"] = t.Rows
	}

	entry := l.entry(ctx)
	switch t.Level {
	case Error:
		entry.WithFields(fields).WithError(t.Err).Error(t.message())
	case Warn:
		fields["slow_threshold"] = l.SlowThreshold.String()
		entry.WithFields(fields).Warn(t.message())
	default:
		entry.WithFields(fields).Info(t.message())
	}
}

func (l *LogrusLogger) entry(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithField("file", utils.FileWithLineNum())
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	return entry
}
