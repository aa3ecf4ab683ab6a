package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	results := map[string]LogLevel{
		"silent":  Silent,
		"ERROR":   Error,
		" warn ":  Warn,
		"warning": Warn,
		"Info":    Info,
	}
	for name, level := range results {
		parsed, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, level, parsed, name)
	}

	_, err := ParseLevel("debug")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "warn", Warn.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}

func TestNewTrace(t *testing.T) {
	calls := 0
	fc := func() (string, int64) {
		calls++
		return "CREATE TABLE users (id SERIAL PRIMARY KEY);", 0
	}

	_, ok := newTrace(Silent, 0, time.Now(), fc, errors.New("boom"))
	assert.False(t, ok)

	_, ok = newTrace(Warn, time.Second, time.Now(), fc, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, calls, "statement text must not be built for dropped traces")

	tr, ok := newTrace(Error, 0, time.Now(), fc, assert.AnError)
	require.True(t, ok)
	assert.Equal(t, Error, tr.Level)
	assert.Equal(t, "SQL failed", tr.message())

	tr, ok = newTrace(Warn, 10*time.Millisecond, time.Now().Add(-time.Second), fc, nil)
	require.True(t, ok)
	assert.True(t, tr.Slow)
	assert.Equal(t, "SLOW SQL executed", tr.message())

	tr, ok = newTrace(Info, 0, time.Now(), fc, nil)
	require.True(t, ok)
	assert.Equal(t, Info, tr.Level)
	assert.Equal(t, "SQL executed", tr.message())
	assert.Contains(t, tr.duration(), "ms")
	assert.Equal(t, 3, calls)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "plain 100%", format("plain 100%", nil))
	assert.Equal(t, "table users: 3", format("table %s: %d", []interface{}{"users", 3}))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		l := Discard.LogMode(Info)
		l.Info(context.Background(), "x")
		l.Warn(context.Background(), "x")
		l.Error(context.Background(), "x")
		l.Trace(context.Background(), time.Now(), func() (string, int64) { return "", 0 }, nil)
	})
	assert.NotNil(t, Default)
}
