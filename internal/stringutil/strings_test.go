// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAnyIgnoreCase(t *testing.T) {
	t.Parallel()

	patterns := []string{"timeout", "deadline"}

	assert.True(t, ContainsAnyIgnoreCase("context DEADLINE exceeded", patterns))
	assert.True(t, ContainsAnyIgnoreCase("Client.Timeout exceeded", patterns))
	assert.False(t, ContainsAnyIgnoreCase("unexpected EOF", patterns))
	assert.False(t, ContainsAnyIgnoreCase("text", []string{""}))
	assert.False(t, ContainsAnyIgnoreCase("text", nil))
	assert.True(t, ContainsAnyIgnoreCase("dial tcp: lookup pokeapi.co: no such host", []string{"NO SUCH HOST"}))
}
