// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package hclogadapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/polylog"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	base := hclog.New(&hclog.LoggerOptions{
		Name:       "app",
		Output:     buffer,
		JSONFormat: true,
		Level:      hclog.Debug,
	})

	provider := NewProvider(base)
	assert.Same(t, provider.Logger("billing"), provider.Logger("billing"))
	assert.Equal(t, base, provider.Logger(""))

	registry := polylog.NewRegistry()
	_, err := registry.RegisterProvider("hclog", provider)
	require.NoError(t, err)
	_, err = registry.UseProvider("hclog")
	require.NoError(t, err)

	registry.For("billing").Info("invoice sent", "id", 42)
	registry.For(nil).Debug("root message")
	registry.For("billing").Trace("silenced")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 2)

	entry := make(map[string]any)
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "app.billing", entry["@module"])
	assert.Equal(t, "invoice sent", entry["@message"])
	assert.InDelta(t, 42, entry["id"], 0)

	entry = make(map[string]any)
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "app", entry["@module"])
}

func TestEnabledLevelsPassThrough(t *testing.T) {
	t.Parallel()

	logger := NewProvider(hclog.New(&hclog.LoggerOptions{Output: new(bytes.Buffer), Level: hclog.Warn})).Logger("foo")
	assert.False(t, logger.IsInfo())
	assert.True(t, logger.IsWarn())
	assert.True(t, logger.IsError())
}
