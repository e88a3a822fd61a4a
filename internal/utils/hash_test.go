// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestHash_Deterministic(t *testing.T) {
	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	require.Len(t, sum1, sha256.Size)
	assert.True(t, bytes.Equal(sum1, sum2), "hash must be deterministic for the same input")
}

func TestHashString_MatchesSHA256(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"email", "a@b.com"},
		{"phone", "555"},
		{"unicode", "zoë@exämple.com"},
		{"spaces are kept", " a@b.com "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := sha256.Sum256([]byte(tt.input))
			assert.Equal(t, hex.EncodeToString(sum[:]), HashString(tt.input))
		})
	}
}

func TestHashString_Empty(t *testing.T) {
	got := HashString("")

	assert.NotEmpty(t, got)
	assert.Equal(t, emptySHA256, got)
}

func TestHashString_DifferentInputs(t *testing.T) {
	assert.NotEqual(t, HashString("test1@example.com"), HashString("test2@example.com"))
}

func TestHashString_IsLowerHex(t *testing.T) {
	got := HashString("1234567890")

	assert.Len(t, got, 64)
	_, err := hex.DecodeString(got)
	assert.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{64}$", got)
}
