// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/polylog"
)

const (
	// TypeSolo serves the default logger for every name.
	TypeSolo = "solo"
	// TypeMulti serves the loggers declared for specific names and the default
	// logger for the others.
	TypeMulti = "multi"
	// TypeNamed derives a logger named after every requested name from the
	// default logger settings.
	TypeNamed = "named"
	// TypeNull discards everything.
	TypeNull = "null"

	BackendHCLog = "hclog"
	BackendZap   = "zap"

	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"

	FormatJSON = "json"
	FormatText = "text"

	nullTag = "!!null"
)

var (
	// ErrParsing reports failures that occur while decoding provider files.
	ErrParsing = errors.New("error parsing")
	// ErrInvalidConfig reports provider files that decode but cannot be applied.
	ErrInvalidConfig = errors.New("invalid providers configuration")

	providerTypes = []string{TypeSolo, TypeMulti, TypeNamed, TypeNull}
	backends      = []string{"", BackendHCLog, BackendZap}
	outputs       = []string{"", OutputStdout, OutputStderr, OutputDiscard}
	formats       = []string{"", FormatJSON, FormatText}
)

// ProvidersConfig is the content of a provider file.
type ProvidersConfig struct {
	// Use is the provider selected after registration, if set.
	Use       string           `json:"use,omitempty" yaml:"use,omitempty"`
	Providers []ProviderConfig `json:"providers" yaml:"providers"`
}

// ProviderConfig declares a single provider.
type ProviderConfig struct {
	Name    string                  `json:"name" yaml:"name"`
	Type    string                  `json:"type" yaml:"type"`
	Default LoggerConfig            `json:"default,omitempty" yaml:"default,omitempty"`
	Loggers map[string]LoggerConfig `json:"loggers,omitempty" yaml:"loggers,omitempty"`
}

// UnmarshalYAML decodes a provider declaration. An unquoted `type: null` is
// the YAML null value, it is read as TypeNull instead of an empty type.
func (p *ProviderConfig) UnmarshalYAML(unmarshal func(any) error) error {
	type plain ProviderConfig
	if err := unmarshal((*plain)(p)); err != nil {
		return err
	}

	fields := make(map[string]yaml.Node)
	if err := unmarshal(&fields); err != nil {
		return err
	}

	if node, ok := fields["type"]; ok && node.ShortTag() == nullTag && node.Value != "" {
		p.Type = TypeNull
	}
	return nil
}

// LoggerConfig declares how a logger is built. Empty fields take the hclog
// backend, the INFO level, the stderr output and the JSON format.
type LoggerConfig struct {
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
}

// LoadProvidersConfig parses the provider file at path.
func LoadProvidersConfig(path string) (*ProvidersConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config, err := ParseProvidersConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return config, nil
}

// ParseProvidersConfig decodes and validates a provider file. An empty
// document declares no providers.
func ParseProvidersConfig(reader io.Reader) (*ProvidersConfig, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	config := new(ProvidersConfig)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ProvidersConfig) validate() error {
	errorsList := []string{}

	declared := map[string]bool{polylog.NullProviderName: true}
	seen := map[string]bool{}
	for i, provider := range c.Providers {
		if provider.Name == "" {
			errorsList = append(errorsList, fmt.Sprintf("missing field 'name' in provider %d", i))
		} else if seen[provider.Name] {
			errorsList = append(errorsList, fmt.Sprintf("duplicated provider '%s'", provider.Name))
		}
		seen[provider.Name] = true
		declared[provider.Name] = true

		if !slices.Contains(providerTypes, provider.Type) {
			errorsList = append(errorsList, fmt.Sprintf("unknown type '%s' in provider '%s'", provider.Type, provider.Name))
		}
		if len(provider.Loggers) > 0 && provider.Type != TypeMulti {
			errorsList = append(errorsList, fmt.Sprintf("field 'loggers' is only allowed for type '%s' in provider '%s'", TypeMulti, provider.Name))
		}

		errorsList = append(errorsList, provider.Default.validate(provider.Name, "default")...)
		for _, name := range sortedKeys(provider.Loggers) {
			errorsList = append(errorsList, provider.Loggers[name].validate(provider.Name, name)...)
		}
	}

	if c.Use != "" && !declared[c.Use] {
		errorsList = append(errorsList, fmt.Sprintf("provider '%s' selected by 'use' is not declared", c.Use))
	}

	if len(errorsList) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errorsList, "; "))
	}
	return nil
}

func (l LoggerConfig) validate(provider, logger string) []string {
	errorsList := []string{}

	if !slices.Contains(backends, l.Backend) {
		errorsList = append(errorsList, fmt.Sprintf("unknown backend '%s' for logger '%s' in provider '%s'", l.Backend, logger, provider))
	}
	if l.Level != "" && !validLevel(l.Level) {
		errorsList = append(errorsList, fmt.Sprintf("unknown level '%s' for logger '%s' in provider '%s'", l.Level, logger, provider))
	}
	if !slices.Contains(outputs, l.Output) {
		errorsList = append(errorsList, fmt.Sprintf("unknown output '%s' for logger '%s' in provider '%s'", l.Output, logger, provider))
	}
	if !slices.Contains(formats, l.Format) {
		errorsList = append(errorsList, fmt.Sprintf("unknown format '%s' for logger '%s' in provider '%s'", l.Format, logger, provider))
	}
	return errorsList
}

// Outputs holds the writers the declared outputs write to.
type Outputs struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Apply registers every declared provider in registry, then selects the
// provider named by Use if set.
func (c *ProvidersConfig) Apply(registry *polylog.Registry, outputs Outputs) error {
	for _, provider := range c.Providers {
		if _, err := registry.RegisterProvider(provider.Name, buildProvider(provider, outputs)); err != nil {
			return err
		}
	}

	if c.Use != "" {
		if _, err := registry.UseProvider(c.Use); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(loggers map[string]LoggerConfig) []string {
	return slices.Sorted(maps.Keys(loggers))
}
