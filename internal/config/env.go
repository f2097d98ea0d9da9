// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/polylog"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// EnvConfig holds the settings read from the environment.
type EnvConfig struct {
	Provider   string `env:"POLYLOG_PROVIDER"`
	ConfigPath string `env:"POLYLOG_CONFIG"`
	LogLevel   string `env:"LOGGER_LEVEL" envDefault:"INFO"`
}

func LoadEnv() (*EnvConfig, error) {
	var envVars EnvConfig
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *EnvConfig) error {
	envError := make([]string, 0)

	if !validLevel(envVars.LogLevel) {
		envError = append(envError, "LOGGER_LEVEL is not a valid level")
	}
	if strings.TrimSpace(envVars.Provider) != envVars.Provider {
		envError = append(envError, "POLYLOG_PROVIDER must not contain leading or trailing spaces")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// validLevel reports if level names a known level, ignoring case.
func validLevel(level string) bool {
	return slices.ContainsFunc(polylog.AllLevels(), func(known polylog.Level) bool {
		return strings.EqualFold(known.String(), level)
	})
}
