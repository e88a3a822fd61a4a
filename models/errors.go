// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrMissingCredentials is returned when a destination is constructed
	// without an access token or an ad account ID.
	ErrMissingCredentials = errors.New("access token and ad account ID are required")

	// ErrInvalidPayloadType is returned for payload types other than
	// CREATE_USER and UPDATE_USER.
	ErrInvalidPayloadType = errors.New("invalid payload type")

	// ErrInvalidDestination is returned when a destination document cannot
	// be decoded (malformed JSON or unknown keys).
	ErrInvalidDestination = errors.New("invalid destination configuration")
)
