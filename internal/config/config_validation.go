// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/audience-sync/internal/validators"
)

var structValidator = validators.NewStructValidator()

// validateSection runs the `validate` tag rules of one config section and
// wraps any failure with the section's sentinel error.
func validateSection(section any, sentinel error) error {
	if err := structValidator.Validate(context.Background(), section); err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}

func (cfg *SyncConfig) validate() error {
	if err := validateSection(cfg.App, ErrInvalidAppConfigs); err != nil {
		return err
	}

	if err := validateSection(cfg.Run, ErrInvalidRunConfigs); err != nil {
		return err
	}

	// history listing only needs the store
	if cfg.Run.HistoryLimit > 0 {
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: history requires a database DSN", ErrInvalidStorageConfigs)
		}
		return nil
	}

	if err := validateSection(cfg.Graph, ErrInvalidGraphConfigs); err != nil {
		return err
	}

	return validateSection(cfg.Destination, ErrInvalidDestinationConfigs)
}

func (cfg *ActivationConfig) validate() error {
	if err := validateSection(cfg.App, ErrInvalidAppConfigs); err != nil {
		return err
	}

	return validateSection(cfg.Activation, ErrInvalidActivationConfigs)
}
