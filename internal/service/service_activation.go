// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/audience-sync/internal/adapter"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/models"
)

type activationService struct {
	adapter adapter.ActivationAdapter

	logger *logger.Logger
}

func NewActivationService(activationAdapter adapter.ActivationAdapter, logger *logger.Logger) (ActivationService, error) {
	if activationAdapter == nil {
		return nil, ErrNoActivationAdapter
	}

	return &activationService{adapter: activationAdapter, logger: logger}, nil
}

func (s *activationService) Probe(ctx context.Context) (models.ConnectionStatus, error) {
	status, err := s.adapter.TestConnection(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "activationService.Probe").Msg("connection test failed")
		return models.ConnectionStatus{}, fmt.Errorf("probe activation service: %w", err)
	}

	s.logger.Info().
		Int("status", status.StatusCode).
		Str("body", status.Body).
		Msg("connection test finished")
	return status, nil
}

func (s *activationService) CreateConfig(ctx context.Context, cfg models.ActivationConfig) (json.RawMessage, error) {
	resp, err := s.adapter.CreateConfig(ctx, cfg)
	if err != nil {
		s.logger.Err(err).
			Str("func", "activationService.CreateConfig").
			Str("label", cfg.Label).
			Msg("error creating config")
		return nil, fmt.Errorf("create config %q: %w", cfg.Label, err)
	}

	s.logger.Info().Str("label", cfg.Label).Msg("config created")
	return resp, nil
}

func (s *activationService) LatestConfig(ctx context.Context) (models.ActivationConfig, error) {
	cfg, err := s.adapter.GetLatestConfig(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "activationService.LatestConfig").Msg("error getting latest config")
		return models.ActivationConfig{}, fmt.Errorf("get latest config: %w", err)
	}

	return cfg, nil
}

func (s *activationService) Trigger(ctx context.Context, name string, dryRun bool) (json.RawMessage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyActivationName
	}

	resp, err := s.adapter.TriggerActivation(ctx, name, models.NewTriggerRequest(dryRun))
	if err != nil {
		s.logger.Err(err).
			Str("func", "activationService.Trigger").
			Str("activation", name).
			Bool("dry_run", dryRun).
			Msg("error triggering activation")
		return nil, fmt.Errorf("trigger activation %q: %w", name, err)
	}

	s.logger.Info().Str("activation", name).Bool("dry_run", dryRun).Msg("activation triggered")
	return resp, nil
}

func (s *activationService) ExampleConfig(dest models.Destination) (models.ActivationConfig, error) {
	if dest.AccessToken() == "" || dest.AdAccountID() == "" {
		return models.ActivationConfig{}, ErrIncompleteDestination
	}

	source, err := json.Marshal(models.BigQuerySource{
		Type:    models.BigQuerySourceType,
		Dataset: models.ExampleBigQueryDataset,
		Table:   models.ExampleBigQueryTable,
	})
	if err != nil {
		return models.ActivationConfig{}, fmt.Errorf("encode example source: %w", err)
	}

	destination, err := json.Marshal(models.MetaDestination{
		Type:                models.DestinationType,
		DestinationSettings: dest.Settings(),
	})
	if err != nil {
		return models.ActivationConfig{}, fmt.Errorf("encode example destination: %w", err)
	}

	return models.ActivationConfig{
		Label: models.ExampleConfigLabel,
		Value: models.ActivationConfigValue{
			ExternalConnections: []json.RawMessage{},
			Sources: map[string]json.RawMessage{
				models.ExampleSourceName: source,
			},
			Destinations: map[string]json.RawMessage{
				models.ExampleDestinationName: destination,
			},
			Activations: []models.Activation{{
				Name:        models.ExampleActivationName,
				Source:      models.SourceRef(models.ExampleSourceName),
				Destination: models.DestinationRef(models.ExampleDestinationName),
				Schedule:    models.ExampleActivationPeriod,
			}},
			Secrets: map[string]json.RawMessage{},
		},
	}, nil
}
