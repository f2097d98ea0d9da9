// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logradapter serves logr loggers through polylog providers.
//
// logr only knows verbosity levels: INFO and WARN are written at V(0), DEBUG at
// V(1) and TRACE at V(2). ERROR messages go through logr.Logger.Error with a
// nil error.
package logradapter

import (
	"github.com/go-logr/logr"

	"github.com/mia-platform/polylog"
)

// Verbosity levels used for DEBUG and TRACE messages.
const (
	DebugVerbosity = 1
	TraceVerbosity = 2
)

var _ polylog.Logger = &Logger{}

// Logger exposes a logr logger as a polylog.Logger.
type Logger struct {
	log logr.Logger
}

// New wraps log, skipping the adapter frame when logr reports the caller.
func New(log logr.Logger) *Logger {
	return &Logger{log: log.WithCallDepth(1)}
}

// NewProvider returns a provider handing out base.WithName(name) for every
// name, and base when no name was resolved.
func NewProvider(base logr.Logger) *polylog.FactoryProvider {
	return polylog.NewFactoryProvider(func(name string) polylog.Logger {
		if name == "" {
			return New(base)
		}
		return New(base.WithName(name))
	})
}

func (l *Logger) Trace(msg string, args ...interface{}) { l.log.V(TraceVerbosity).Info(msg, args...) }
func (l *Logger) Debug(msg string, args ...interface{}) { l.log.V(DebugVerbosity).Info(msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log.Info(msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log.Error(nil, msg, args...) }

func (l *Logger) IsTrace() bool { return l.log.V(TraceVerbosity).Enabled() }
func (l *Logger) IsDebug() bool { return l.log.V(DebugVerbosity).Enabled() }
func (l *Logger) IsInfo() bool  { return l.log.Enabled() }
func (l *Logger) IsWarn() bool  { return l.log.Enabled() }

// IsError reports if a sink is attached; logr never filters errors by
// verbosity.
func (l *Logger) IsError() bool { return l.log.GetSink() != nil }
