// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package hclogadapter serves hclog loggers through polylog providers.
//
// hclog.Logger already satisfies polylog.Logger, so hclog loggers can be put in
// a SoloProvider or MultiProvider as they are. NewProvider derives a named
// sub logger for every requested name instead.
package hclogadapter

import (
	"github.com/hashicorp/go-hclog"

	"github.com/mia-platform/polylog"
)

// Make sure that hclog loggers are polylog loggers.
var _ polylog.Logger = hclog.Logger(nil)

// NewProvider returns a provider handing out base.Named(name) for every name,
// and base itself when no name was resolved.
func NewProvider(base hclog.Logger) *polylog.FactoryProvider {
	return polylog.NewFactoryProvider(func(name string) polylog.Logger {
		if name == "" {
			return base
		}
		return base.Named(name)
	})
}
