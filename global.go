// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

// defaultRegistry backs the package level functions.
var defaultRegistry = NewRegistry()

// Default returns the process wide registry used by the package level
// functions.
func Default() *Registry {
	return defaultRegistry
}

// For returns the logger for value from the default registry.
func For(value any) Logger {
	return defaultRegistry.For(value)
}

// ActiveProvider returns the active provider of the default registry.
func ActiveProvider() Provider {
	return defaultRegistry.ActiveProvider()
}

// Providers returns the provider names of the default registry.
func Providers() []string {
	return defaultRegistry.Providers()
}

// UseProvider selects a provider of the default registry.
func UseProvider(name string) (Provider, error) {
	return defaultRegistry.UseProvider(name)
}

// RegisterProvider registers provider in the default registry.
func RegisterProvider(name string, provider Provider) (Provider, error) {
	return defaultRegistry.RegisterProvider(name, provider)
}

// RegisterProviderValue registers value in the default registry.
func RegisterProviderValue(name string, value any) (Provider, error) {
	return defaultRegistry.RegisterProviderValue(name, value)
}

// Reset restores the default registry to its initial state. Only meant for
// tests.
func Reset() {
	defaultRegistry.Reset()
}
