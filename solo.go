// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

// Make sure that SoloProvider is a Provider.
var _ Provider = &SoloProvider{}

// SoloProvider hands out the same logger for every request, whatever the name.
// The "null" provider is a SoloProvider over a NullLogger.
type SoloProvider struct {
	logger Logger
}

// NewSoloProvider returns a provider that always returns logger.
func NewSoloProvider(logger Logger) *SoloProvider {
	return &SoloProvider{logger: logger}
}

// Logger returns the logger of the provider, ignoring the name.
func (p *SoloProvider) Logger(string) Logger {
	return p.logger
}
