// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mia-platform/polylog"
)

// ConvertLevel maps a polylog level to the matching hclog level.
func ConvertLevel(level polylog.Level) hclog.Level {
	switch level {
	case polylog.TRACE:
		return hclog.Trace
	case polylog.DEBUG:
		return hclog.Debug
	case polylog.INFO:
		return hclog.Info
	case polylog.WARN:
		return hclog.Warn
	case polylog.ERROR:
		return hclog.Error
	default:
		return hclog.Info
	}
}

// Logger describes the interface that must be implemented by all loggers
type Logger interface {
	polylog.Logger

	// WithName returns a new Logger instance with the specified name.
	WithName(name string) Logger

	// SetLevel updates the logger level.
	SetLevel(level polylog.Level)

	// Name returns the name of the logger.
	Name() string
}

// Options configures a new Logger.
type Options struct {
	Name  string
	Level polylog.Level
	// JSON selects JSON lines instead of the human readable format.
	JSON bool
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

// instance is a Logger implementation.
type instance struct {
	log hclog.Logger
}

// NewLogger creates a new JSON logger instance writing at the INFO level.
func NewLogger(writer io.Writer) Logger {
	return New(writer, Options{Level: polylog.INFO, JSON: true})
}

// New creates a new logger instance configured by opts.
func New(writer io.Writer, opts Options) Logger {
	return &instance{log: NewHCLog(writer, opts)}
}

// NewHCLog creates the hclog logger backing New, for callers that need the
// hclog API itself.
func NewHCLog(writer io.Writer, opts Options) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		JSONFormat: opts.JSON,
		Output:     writer,
		TimeFn:     time.Now,
		Level:      ConvertLevel(opts.Level),
	})
}

// Wrap exposes an existing hclog logger as a Logger.
func Wrap(log hclog.Logger) Logger {
	return &instance{log: log}
}

func (i instance) WithName(name string) Logger {
	return &instance{
		log: i.log.ResetNamed(name),
	}
}

func (i instance) Name() string {
	return i.log.Name()
}

func (i instance) SetLevel(level polylog.Level) {
	i.log.SetLevel(ConvertLevel(level))
}

func (i instance) Trace(msg string, args ...interface{}) {
	i.log.Trace(msg, args...)
}

func (i instance) Debug(msg string, args ...interface{}) {
	i.log.Debug(msg, args...)
}

func (i instance) Info(msg string, args ...interface{}) {
	i.log.Info(msg, args...)
}

func (i instance) Warn(msg string, args ...interface{}) {
	i.log.Warn(msg, args...)
}

func (i instance) Error(msg string, args ...interface{}) {
	i.log.Error(msg, args...)
}

func (i instance) IsTrace() bool { return i.log.IsTrace() }
func (i instance) IsDebug() bool { return i.log.IsDebug() }
func (i instance) IsInfo() bool  { return i.log.IsInfo() }
func (i instance) IsWarn() bool  { return i.log.IsWarn() }
func (i instance) IsError() bool { return i.log.IsError() }
