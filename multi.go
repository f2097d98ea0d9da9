// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"maps"
	"slices"
	"sync"
)

// Make sure that MultiProvider is a Provider.
var _ Provider = &MultiProvider{}

// MultiProvider holds a default logger and a set of loggers bound to specific
// names. Names without a dedicated logger get the default one.
//
//	provider := polylog.NewMultiProvider(stdoutLogger)
//	provider.Set("billing.Invoice", fileLogger)
//
//	provider.Logger("billing.Invoice") // fileLogger
//	provider.Logger("billing.Payment") // stdoutLogger
type MultiProvider struct {
	lock          sync.RWMutex
	defaultLogger Logger
	loggers       map[string]Logger
}

// NewMultiProvider returns a provider using defaultLogger for every name without
// a dedicated logger.
func NewMultiProvider(defaultLogger Logger) *MultiProvider {
	return &MultiProvider{
		defaultLogger: defaultLogger,
		loggers:       make(map[string]Logger),
	}
}

// Logger returns the logger set for name, or the default logger when name is
// empty or has no dedicated logger.
func (p *MultiProvider) Logger(name string) Logger {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if name == "" {
		return p.defaultLogger
	}

	if logger, ok := p.loggers[name]; ok {
		return logger
	}
	return p.defaultLogger
}

// Default returns the default logger.
func (p *MultiProvider) Default() Logger {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.defaultLogger
}

// SetDefault replaces the default logger.
func (p *MultiProvider) SetDefault(logger Logger) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.defaultLogger = logger
}

// Get returns the logger set for name without falling back to the default.
func (p *MultiProvider) Get(name string) (Logger, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	logger, ok := p.loggers[name]
	return logger, ok
}

// Set binds logger to name, replacing any previous logger for the same name.
// The empty name is always served by the default logger, so Set("", logger)
// replaces the default logger.
func (p *MultiProvider) Set(name string, logger Logger) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if name == "" {
		p.defaultLogger = logger
		return
	}
	p.loggers[name] = logger
}

// Names returns the sorted names that have a dedicated logger.
func (p *MultiProvider) Names() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return slices.Sorted(maps.Keys(p.loggers))
}

// Has reports if name has a dedicated logger.
func (p *MultiProvider) Has(name string) bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	_, ok := p.loggers[name]
	return ok
}
