// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"sync"
)

// Make sure that FactoryProvider is a Provider.
var _ Provider = &FactoryProvider{}

// FactoryProvider builds a logger the first time a name is requested and
// returns the same instance for every later request of that name.
type FactoryProvider struct {
	lock    sync.Mutex
	build   func(name string) Logger
	loggers map[string]Logger
}

// NewFactoryProvider returns a provider that calls build once per name.
func NewFactoryProvider(build func(name string) Logger) *FactoryProvider {
	return &FactoryProvider{
		build:   build,
		loggers: make(map[string]Logger),
	}
}

// Logger returns the cached logger for name, building it on the first request.
func (p *FactoryProvider) Logger(name string) Logger {
	p.lock.Lock()
	defer p.lock.Unlock()

	if logger, ok := p.loggers[name]; ok {
		return logger
	}

	logger := p.build(name)
	p.loggers[name] = logger
	return logger
}
