// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid process-wide settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGraphConfigs indicates invalid Graph API settings
	// (for example, missing base URL, version or request timeout).
	ErrInvalidGraphConfigs = errors.New("invalid graph api configuration")
	// ErrInvalidDestinationConfigs indicates a destination without access
	// token or ad account, or with an unknown payload type.
	ErrInvalidDestinationConfigs = errors.New("invalid destination configuration")
	// ErrInvalidActivationConfigs indicates invalid activation service
	// settings (for example, missing address or API key).
	ErrInvalidActivationConfigs = errors.New("invalid activation service configuration")
	// ErrInvalidStorageConfigs indicates missing run history storage
	// settings where they are required.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRunConfigs indicates invalid run options (for example, no
	// records file).
	ErrInvalidRunConfigs = errors.New("invalid run configuration")
)
