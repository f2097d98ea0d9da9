// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package zapadapter serves zap loggers through polylog providers.
package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mia-platform/polylog"
)

var _ polylog.Logger = &Logger{}

// Logger exposes a zap logger as a polylog.Logger. zap has no TRACE level, so
// TRACE messages are written at DEBUG.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// New wraps log. Key/value arguments are handled like the zap sugared logger
// does.
func New(log *zap.Logger) *Logger {
	return &Logger{
		base:  log,
		sugar: log.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// NewProvider returns a provider handing out a logger built on
// base.Named(name) for every name, and on base when no name was resolved.
func NewProvider(base *zap.Logger) *polylog.FactoryProvider {
	return polylog.NewFactoryProvider(func(name string) polylog.Logger {
		if name == "" {
			return New(base)
		}
		return New(base.Named(name))
	})
}

// ConvertLevel maps a polylog level to the matching zap level.
func ConvertLevel(level polylog.Level) zapcore.Level {
	switch level {
	case polylog.TRACE, polylog.DEBUG:
		return zapcore.DebugLevel
	case polylog.WARN:
		return zapcore.WarnLevel
	case polylog.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Zap returns the wrapped logger.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

func (l *Logger) Trace(msg string, args ...interface{}) { l.sugar.Debugw(msg, args...) }
func (l *Logger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, args...) }

func (l *Logger) IsTrace() bool { return l.enabled(zapcore.DebugLevel) }
func (l *Logger) IsDebug() bool { return l.enabled(zapcore.DebugLevel) }
func (l *Logger) IsInfo() bool  { return l.enabled(zapcore.InfoLevel) }
func (l *Logger) IsWarn() bool  { return l.enabled(zapcore.WarnLevel) }
func (l *Logger) IsError() bool { return l.enabled(zapcore.ErrorLevel) }

func (l *Logger) enabled(level zapcore.Level) bool {
	return l.base.Core().Enabled(level)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
