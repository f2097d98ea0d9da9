// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"

	"github.com/mia-platform/polylog"
	"github.com/mia-platform/polylog/internal/config"
)

const loggerName = "polylog:cmd"

// options holds the registry a sub command works on.
type options struct {
	configPath string
	provider   string
	registry   *polylog.Registry
	outputs    config.Outputs
}

// load applies the configuration file, if any, and selects the requested
// provider.
func (o *options) load(ctx context.Context) error {
	log := diagnostics(ctx)

	if o.configPath != "" {
		log.Debug("loading providers", "path", o.configPath)
		providers, err := config.LoadProvidersConfig(o.configPath)
		if err != nil {
			return err
		}

		if err := providers.Apply(o.registry, o.outputs); err != nil {
			return err
		}
	}

	if o.provider != "" {
		if _, err := o.registry.UseProvider(o.provider); err != nil {
			return err
		}
	}

	// selects the null provider when nothing else was chosen
	o.registry.ActiveProvider()
	log.Debug("provider selected", "provider", o.registry.ActiveName())
	return nil
}
