// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"strconv"
	"strings"
)

// Logger is the capability every logger handed out by a Provider exposes. The
// method set matches hclog.Logger, so hclog loggers can be used directly.
type Logger interface {
	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Debug emit a message and key/value pairs at the DEBUG level.
	Debug(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Warn emit a message and key/value pairs at the WARN level.
	Warn(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})

	// IsTrace reports if messages at the TRACE level would be emitted.
	IsTrace() bool

	// IsDebug reports if messages at the DEBUG level would be emitted.
	IsDebug() bool

	// IsInfo reports if messages at the INFO level would be emitted.
	IsInfo() bool

	// IsWarn reports if messages at the WARN level would be emitted.
	IsWarn() bool

	// IsError reports if messages at the ERROR level would be emitted.
	IsError() bool
}

// Level is the severity of a message, from ERROR to the most verbose TRACE.
type Level int

// Levels ordered from the least to the most verbose.
const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
	TRACE
)

// LevelFromString parses level ignoring case. Unknown values map to INFO.
func LevelFromString(level string) Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// String returns the upper case name of the level.
func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// AllLevels returns every known level, from the most to the least verbose.
func AllLevels() []Level {
	return []Level{TRACE, DEBUG, INFO, WARN, ERROR}
}

// Emit sends msg to the method of l matching level. Unknown levels are
// emitted at INFO.
func Emit(l Logger, level Level, msg string, args ...interface{}) {
	switch level {
	case TRACE:
		l.Trace(msg, args...)
	case DEBUG:
		l.Debug(msg, args...)
	case WARN:
		l.Warn(msg, args...)
	case ERROR:
		l.Error(msg, args...)
	default:
		l.Info(msg, args...)
	}
}

// Enabled reports if l would emit a message at level.
func Enabled(l Logger, level Level) bool {
	switch level {
	case TRACE:
		return l.IsTrace()
	case DEBUG:
		return l.IsDebug()
	case WARN:
		return l.IsWarn()
	case ERROR:
		return l.IsError()
	default:
		return l.IsInfo()
	}
}
