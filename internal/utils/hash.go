// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 digest of data.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashString returns the hex-encoded SHA-256 digest of the UTF-8 bytes of s.
//
// An empty string is hashed as well; the result is the well-known digest
// e3b0c442...b855, never an empty value.
//
// Example usage:
//
//	hashed := utils.HashString("a@b.com")
func HashString(s string) string {
	return hex.EncodeToString(Hash([]byte(s)))
}
