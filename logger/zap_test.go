package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setupTestZap() (*zap.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	return zap.New(core), &buf
}

func TestZapLogger_LogMode(t *testing.T) {
	zapLogger, _ := setupTestZap()
	logger := NewZapLogger(zapLogger, Config{LogLevel: Error, SlowThreshold: time.Second})

	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*ZapLogger).LogLevel)
	assert.Equal(t, time.Second, infoLogger.(*ZapLogger).SlowThreshold)
	assert.Equal(t, Error, logger.(*ZapLogger).LogLevel)
}

func TestZapLogger_LogLevels(t *testing.T) {
	ctx := context.Background()
	zapLogger, buf := setupTestZap()
	logger := NewZapLogger(zapLogger, Config{LogLevel: Warn})

	logger.Info(ctx, "hidden %d", 1)
	assert.Empty(t, buf.String())

	logger.Warn(ctx, "preload of %s skipped", "orders")
	assert.Contains(t, buf.String(), "preload of orders skipped")
	assert.Contains(t, buf.String(), "zap_test.go")

	buf.Reset()
	logger.Error(ctx, "failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestZapLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal trace", func(t *testing.T) {
		zapLogger, buf := setupTestZap()
		logger := NewZapLogger(zapLogger, Config{LogLevel: Info})
		logger.Trace(ctx, time.Now(), func() (string, int64) {
			return "INSERT INTO users (name) VALUES ('jinzhu');", 1
		}, nil)

		output := buf.String()
		assert.Contains(t, output, "INSERT INTO users (name) VALUES ('jinzhu');")
		assert.Contains(t, output, `"rows":1`)
		assert.Contains(t, output, "SQL executed")
	})

	t.Run("Slow query", func(t *testing.T) {
		zapLogger, buf := setupTestZap()
		logger := NewZapLogger(zapLogger, Config{LogLevel: Info, SlowThreshold: time.Millisecond})
		logger.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
			return "SELECT * FROM orders", 10
		}, nil)

		assert.Contains(t, buf.String(), "slow_threshold")
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})

	t.Run("Error trace", func(t *testing.T) {
		zapLogger, buf := setupTestZap()
		logger := NewZapLogger(zapLogger, Config{LogLevel: Error})
		logger.Trace(ctx, time.Now(), func() (string, int64) {
			return "SELECT * FROM missing", -1
		}, assert.AnError)

		assert.Contains(t, buf.String(), assert.AnError.Error())
		assert.NotContains(t, buf.String(), `"rows"`)
	})
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DPanicLevel, ZapLevel(Silent))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(Error))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(Warn))
	assert.Equal(t, zapcore.InfoLevel, ZapLevel(Info))
}

func TestNewZapLoggerWithConfig(t *testing.T) {
	logger := NewZapLoggerWithConfig(Config{LogLevel: Info})
	require.NotNil(t, logger)
	assert.Equal(t, Info, logger.(*ZapLogger).LogLevel)
}
