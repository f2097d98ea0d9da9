// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/polylog"
	"github.com/mia-platform/polylog/internal/config"
	"github.com/mia-platform/polylog/internal/logger"
)

var providersFile = filepath.Join("testdata", "providers.yaml")

func TestCmds(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cmd                  *cobra.Command
		args                 []string
		expectedOutput       string
		expectedError        error
		expectedErrorMessage string
	}{
		"providers without configuration lists the null provider": {
			cmd:            ProvidersCmd(),
			expectedOutput: "* null\n",
		},
		"providers lists the configured providers": {
			cmd:            ProvidersCmd(),
			args:           []string{"--" + configFlagName, providersFile},
			expectedOutput: "  console\n  null\n  per-name\n* split\n",
		},
		"providers selects the requested provider": {
			cmd:            ProvidersCmd(),
			args:           []string{"-c", providersFile, "-p", "console"},
			expectedOutput: "* console\n  null\n  per-name\n  split\n",
		},
		"providers fails for unknown providers": {
			cmd:                  ProvidersCmd(),
			args:                 []string{"--" + providerFlagName, "missing"},
			expectedError:        polylog.ErrUnknownProvider,
			expectedErrorMessage: "unknown provider: \"missing\"\n",
		},
		"providers fails for missing config files": {
			cmd:                  ProvidersCmd(),
			args:                 []string{"-c", filepath.Join("testdata", "missing.yaml")},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("open %s: %s\n", filepath.Join("testdata", "missing.yaml"), syscall.ENOENT),
		},
		"resolve without arguments prints usage": {
			cmd:            ResolveCmd(),
			expectedOutput: "usage string",
		},
		"resolve reports dedicated and default names": {
			cmd:            ResolveCmd(),
			args:           []string{"billing.Invoice", "billing.Payment", "-c", providersFile},
			expectedOutput: "billing.Invoice\tdedicated\nbilling.Payment\tdefault\n",
		},
		"resolve on named providers": {
			cmd:            ResolveCmd(),
			args:           []string{"billing.Payment", "-c", providersFile, "-p", "per-name"},
			expectedOutput: "billing.Payment\tdedicated\n",
		},
		"emit with a missing message prints usage and fails": {
			cmd:                  EmitCmd(),
			args:                 []string{"billing.Invoice"},
			expectedOutput:       "usage string",
			expectedError:        errWrongArguments,
			expectedErrorMessage: errWrongArguments.Error() + ", got 1\n",
		},
		"emit with too many arguments prints usage and fails": {
			cmd:                  EmitCmd(),
			args:                 []string{"billing.Invoice", "hello", "world"},
			expectedOutput:       "usage string",
			expectedError:        errWrongArguments,
			expectedErrorMessage: errWrongArguments.Error() + ", got 3\n",
		},
		"emit with an invalid level prints usage and fails": {
			cmd:                  EmitCmd(),
			args:                 []string{"billing.Invoice", "hello", "--" + levelFlagName, "LOUD"},
			expectedOutput:       "usage string",
			expectedError:        errInvalidLevel,
			expectedErrorMessage: errInvalidLevel.Error() + ": LOUD\n",
		},
		"emit through the null provider writes nothing": {
			cmd:  EmitCmd(),
			args: []string{"billing.Invoice", "hello"},
		},
		"emit below the logger level writes nothing": {
			cmd:  EmitCmd(),
			args: []string{"billing.Invoice", "hello", "--level", "trace", "-c", providersFile},
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			errBuffer := new(bytes.Buffer)
			outBuffer := new(bytes.Buffer)
			test.cmd.SetOut(outBuffer)
			test.cmd.SetErr(errBuffer)
			test.cmd.SetUsageTemplate("usage string")
			test.cmd.SetArgs(append([]string{}, test.args...))

			err := test.cmd.ExecuteContext(t.Context())
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Equal(t, test.expectedErrorMessage, errBuffer.String())
			} else {
				assert.NoError(t, err)
				assert.Empty(t, errBuffer)
			}

			assert.Equal(t, test.expectedOutput, outBuffer.String())
		})
	}
}

func TestEmitCmd(t *testing.T) {
	t.Parallel()

	outBuffer := new(bytes.Buffer)
	cmd := EmitCmd()
	cmd.SetOut(outBuffer)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"billing.Invoice", "invoice sent", "--level", "warn", "-c", providersFile})
	require.NoError(t, cmd.ExecuteContext(t.Context()))

	entry := make(map[string]any)
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(outBuffer.Bytes()), &entry))
	assert.Equal(t, "invoice sent", entry["@message"])
	assert.Equal(t, "warn", entry["@level"])
	assert.Equal(t, "billing.Invoice", entry["@module"])
}

func TestProvidersFromEnvironment(t *testing.T) {
	t.Setenv("POLYLOG_CONFIG", providersFile)
	t.Setenv("POLYLOG_PROVIDER", "per-name")

	outBuffer := new(bytes.Buffer)
	cmd := ProvidersCmd()
	cmd.SetOut(outBuffer)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(t.Context()))
	assert.Equal(t, "  console\n  null\n* per-name\n  split\n", outBuffer.String())
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	log := logger.NewLogger(buffer)
	log.SetLevel(polylog.DEBUG)
	ctx := polylog.WithContext(t.Context(), log)

	opts := &options{
		configPath: providersFile,
		registry:   polylog.NewRegistry(),
		outputs:    config.Outputs{Stdout: new(bytes.Buffer), Stderr: new(bytes.Buffer)},
	}
	require.NoError(t, opts.load(ctx))
	assert.Contains(t, buffer.String(), loggerName)
	assert.Contains(t, buffer.String(), "provider selected")

	assert.Equal(t, polylog.NewNullLogger(), diagnostics(t.Context()))
}

func TestDiagnosticsWrapsHCLog(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	base := hclog.New(&hclog.LoggerOptions{Output: buffer, JSONFormat: true, Level: hclog.Debug})
	log := diagnostics(polylog.WithContext(t.Context(), base))

	named, ok := log.(logger.Logger)
	require.True(t, ok)
	assert.Equal(t, loggerName, named.Name())

	log.Debug("wrapped line")
	entry := make(map[string]any)
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buffer.Bytes()), &entry))
	assert.Equal(t, loggerName, entry["@module"])
	assert.Equal(t, "wrapped line", entry["@message"])
}

func TestBinding(t *testing.T) {
	t.Parallel()

	multi := polylog.NewMultiProvider(polylog.NewNullLogger())
	multi.Set("foo", polylog.NewNullLogger())
	factory := polylog.NewFactoryProvider(func(string) polylog.Logger { return polylog.NewNullLogger() })

	assert.Equal(t, "dedicated", binding(multi, "foo"))
	assert.Equal(t, "default", binding(multi, "bar"))
	assert.Equal(t, "dedicated", binding(factory, "foo"))
	assert.Equal(t, "default", binding(factory, ""))
	assert.Equal(t, "default", binding(polylog.NewSoloProvider(polylog.NewNullLogger()), "foo"))
	assert.Equal(t, "unknown", binding(polylog.ProviderFunc(func(string) polylog.Logger { return nil }), "foo"))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, polylog.WARN, level)

	_, err = parseLevel("loud")
	require.ErrorIs(t, err, errInvalidLevel)
}
