// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateIsV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_ShortCode(t *testing.T) {
	g := NewUUIDGenerator()

	code := g.ShortCode(6)
	assert.Len(t, code, 6)
	assert.Regexp(t, "^[0-9A-F]{6}$", code)

	assert.Len(t, g.ShortCode(0), 32)
	assert.Len(t, g.ShortCode(100), 32)
	assert.NotEqual(t, g.ShortCode(16), g.ShortCode(16))
}

func TestDeviceIdentifier(t *testing.T) {
	_, err := uuid.Parse(DeviceIdentifier())
	assert.NoError(t, err)
}
