// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

// Provider supplies the logger bound to a resolved logger name. An empty
// name means that no name could be resolved.
type Provider interface {
	Logger(name string) Logger
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(name string) Logger

// Logger calls f(name).
func (f ProviderFunc) Logger(name string) Logger {
	return f(name)
}
