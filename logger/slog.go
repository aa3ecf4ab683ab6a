package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/chela-orm/chela/utils"
)

type slogLogger struct {
	Logger        *slog.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewSlogLogger adapts a log/slog logger
func NewSlogLogger(logger *slog.Logger, config Config) Interface {
	return &slogLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

func (l *slogLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *slogLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.log(ctx, slog.LevelInfo, format(msg, data))
	}
}

func (l *slogLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.log(ctx, slog.LevelWarn, format(msg, data))
	}
}

func (l *slogLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.log(ctx, slog.LevelError, format(msg, data))
	}
}

func (l *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	t, ok := newTrace(l.LogLevel, l.SlowThreshold, begin, fc, err)
	if !ok {
		return
	}

	attrs := []slog.Attr{
		slog.String("duration", t.duration()),
		slog.String("sql", t.SQL),
	}
	if t.Rows != -1 {
		attrs = append(attrs, slog.Int64("rows", t.Rows))
	}

	level := slog.LevelInfo
	switch t.Level {
	case Error:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", t.Err.Error()))
	case Warn:
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("slow_threshold", l.SlowThreshold.String()))
	}
	l.log(ctx, level, t.message(), slog.Attr{Key: "trace", Value: slog.GroupValue(attrs...)})
}

func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}

	if !l.Logger.Enabled(ctx, level) {
		return
	}

	attrs = append(attrs, slog.String("file", utils.FileWithLineNum()))
	l.Logger.LogAttrs(ctx, level, msg, attrs...)
}
