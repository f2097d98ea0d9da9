// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoloProvider(t *testing.T) {
	t.Parallel()

	solo := newTagged("Han Solo")
	provider := NewSoloProvider(solo)

	for _, name := range []string{"", "foo", "bar"} {
		assert.Same(t, solo, provider.Logger(name))
	}
}
