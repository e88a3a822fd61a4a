// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/audience-sync/models"
)

// SyncConfig is the subset of [StructuredConfig] used by the audiencesync
// binary.
type SyncConfig struct {
	App         App
	Graph       Graph
	Destination Destination
	Storage     Storage
	Run         Run
}

// GetSyncConfig builds the merged configuration from args and the
// environment and validates the sections audiencesync needs.
func GetSyncConfig(args []string) (*SyncConfig, error) {
	structuredCfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error building sync config: %w", err)
	}

	cfg := &SyncConfig{
		App:         structuredCfg.App,
		Graph:       structuredCfg.Graph,
		Destination: structuredCfg.Destination,
		Storage:     structuredCfg.Storage,
		Run:         structuredCfg.Run,
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating sync config: %w", err)
	}

	return cfg, nil
}

// DestinationSettings converts the destination section into the settings
// accepted by [models.NewDestination].
func (cfg *SyncConfig) DestinationSettings() models.DestinationSettings {
	return cfg.Destination.Settings()
}

// Settings converts the section into [models.DestinationSettings].
func (d Destination) Settings() models.DestinationSettings {
	return models.DestinationSettings{
		AccessToken:  d.AccessToken,
		AdAccountID:  d.AdAccountID,
		PayloadType:  models.PayloadType(d.PayloadType),
		AudienceName: d.AudienceName,
	}
}
