// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package zapadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mia-platform/polylog"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	logger.Trace("trace message", "key", "value")
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "trace message", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"key": "value"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[4].Level)
}

func TestEnabledLevels(t *testing.T) {
	t.Parallel()

	core, _ := observer.New(zapcore.WarnLevel)
	logger := New(zap.New(core))

	assert.False(t, logger.IsTrace())
	assert.False(t, logger.IsDebug())
	assert.False(t, logger.IsInfo())
	assert.True(t, logger.IsWarn())
	assert.True(t, logger.IsError())
	assert.False(t, New(zap.NewNop()).IsError())
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)
	provider := NewProvider(base)

	registry := polylog.NewRegistry()
	_, err := registry.RegisterProvider("zap", provider)
	require.NoError(t, err)
	_, err = registry.UseProvider("zap")
	require.NoError(t, err)

	registry.For(polylog.Symbol("billing")).Info("invoice sent")
	registry.For(nil).Info("root message")
	registry.For("billing").Debug("silenced")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "billing", entries[0].LoggerName)
	assert.Equal(t, "", entries[1].LoggerName)

	named, ok := provider.Logger("billing").(*Logger)
	require.True(t, ok)
	assert.Same(t, named, provider.Logger("billing"))
	assert.Equal(t, "billing", named.Zap().Name())
}

func TestConvertLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zapcore.DebugLevel, ConvertLevel(polylog.TRACE))
	assert.Equal(t, zapcore.DebugLevel, ConvertLevel(polylog.DEBUG))
	assert.Equal(t, zapcore.InfoLevel, ConvertLevel(polylog.INFO))
	assert.Equal(t, zapcore.WarnLevel, ConvertLevel(polylog.WARN))
	assert.Equal(t, zapcore.ErrorLevel, ConvertLevel(polylog.ERROR))
	assert.Equal(t, zapcore.InfoLevel, ConvertLevel(polylog.Level(999)))
}
