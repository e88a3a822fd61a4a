// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ActivationConfig is the subset of [StructuredConfig] used by the
// activationctl binary.
type ActivationConfig struct {
	App        App
	Activation Activation
	// Destination feeds the example config; it is not validated here.
	Destination Destination
	// Run supplies DryRun for triggered activations.
	Run Run
}

// GetActivationConfig builds the merged configuration from args and the
// environment and validates the sections activationctl needs.
func GetActivationConfig(args []string) (*ActivationConfig, error) {
	structuredCfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error building activation config: %w", err)
	}

	cfg := &ActivationConfig{
		App:         structuredCfg.App,
		Activation:  structuredCfg.Activation,
		Destination: structuredCfg.Destination,
		Run:         structuredCfg.Run,
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating activation config: %w", err)
	}

	return cfg, nil
}
