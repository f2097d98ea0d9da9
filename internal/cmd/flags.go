// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/polylog"
	"github.com/mia-platform/polylog/internal/config"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to a YAML file declaring the providers to register. Defaults to POLYLOG_CONFIG."

	providerFlagName  = "provider"
	providerFlagShort = "p"
	providerFlagUsage = "Name of the provider to select. Defaults to POLYLOG_PROVIDER or the 'use' field of the config file."
)

// flags collects the CLI options shared by every sub command.
type flags struct {
	configPath string
	provider   string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
	cmd.Flags().StringVarP(&f.provider, providerFlagName, providerFlagShort, "", providerFlagUsage)
}

// toOptions builds an options instance from the parsed flags, falling back to
// the environment for unset values.
func (f *flags) toOptions(cmd *cobra.Command) (*options, error) {
	envVars, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	configPath := f.configPath
	if configPath == "" {
		configPath = envVars.ConfigPath
	}

	provider := f.provider
	if provider == "" {
		provider = envVars.Provider
	}

	return &options{
		configPath: configPath,
		provider:   provider,
		registry:   polylog.NewRegistry(),
		outputs: config.Outputs{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
	}, nil
}
