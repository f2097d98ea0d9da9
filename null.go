// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"io"
)

var (
	_ Logger    = NullLogger{}
	_ io.Writer = NullLogger{}
	_ io.Closer = NullLogger{}
)

// nullLogger is the shared instance served by the "null" provider.
var nullLogger Logger = NullLogger{}

// NullLogger discards everything and reports every level as disabled.
type NullLogger struct{}

// NewNullLogger returns a logger that discards all log messages.
func NewNullLogger() Logger {
	return nullLogger
}

func (NullLogger) Trace(string, ...interface{}) {}
func (NullLogger) Debug(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})  {}
func (NullLogger) Warn(string, ...interface{})  {}
func (NullLogger) Error(string, ...interface{}) {}

// Log is a no-op at every level.
func (NullLogger) Log(Level, string, ...interface{}) {}

func (NullLogger) IsTrace() bool { return false }
func (NullLogger) IsDebug() bool { return false }
func (NullLogger) IsInfo() bool  { return false }
func (NullLogger) IsWarn() bool  { return false }
func (NullLogger) IsError() bool { return false }

// Write discards p.
func (NullLogger) Write(p []byte) (int, error) { return len(p), nil }

// Close is a no-op.
func (NullLogger) Close() error { return nil }
