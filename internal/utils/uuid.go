// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUID.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// ShortCode returns an upper-case code of n hex characters, capped at 32.
// Used for invitation codes.
func (g *UUIDGenerator) ShortCode(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n <= 0 || n > len(raw) {
		n = len(raw)
	}
	return strings.ToUpper(raw[:n])
}

// DeviceIdentifier returns a random device id for ephemeral authentication.
func DeviceIdentifier() string {
	return uuid.NewString()
}
