// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/utils"
	"github.com/MKhiriev/audience-sync/models"
)

// APIKeyHeader carries the activation service API key.
const APIKeyHeader = "X-API-Key"

const activationAPIPath = "/api/v1"

type activationAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewActivationAdapter constructs a resty implementation of
// [ActivationAdapter] for the service at activationCfg.Address. The API key
// is attached to every request.
//
// Returns an error if the address is empty or cannot be parsed.
func NewActivationAdapter(activationCfg config.Activation, log *logger.Logger) (ActivationAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(activationCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid activation service address: %w", err)
	}

	client := utils.NewHTTPClient().WithTimeout(activationCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL+activationAPIPath).
		SetHeader(APIKeyHeader, strings.TrimSpace(activationCfg.APIKey))
	withRunID(client)
	withLogging(client, log)

	return &activationAdapter{client: client, logger: log}, nil
}

// TestConnection implements [ActivationAdapter].
func (a *activationAdapter) TestConnection(ctx context.Context) (models.ConnectionStatus, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Post("/connect")
	if err != nil {
		return models.ConnectionStatus{}, fmt.Errorf("connect request: %w", err)
	}

	return models.ConnectionStatus{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}, nil
}

// CreateConfig implements [ActivationAdapter].
func (a *activationAdapter) CreateConfig(ctx context.Context, cfg models.ActivationConfig) (json.RawMessage, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cfg).
		Post("/configs")
	if err != nil {
		return nil, fmt.Errorf("create config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	a.logger.Debug().Str("label", cfg.Label).Msg("config created")
	return rawJSON(resp.Body()), nil
}

// GetLatestConfig implements [ActivationAdapter].
func (a *activationAdapter) GetLatestConfig(ctx context.Context) (models.ActivationConfig, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/configs:getLatest")
	if err != nil {
		return models.ActivationConfig{}, fmt.Errorf("get latest config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivationConfig{}, err
	}

	var cfg models.ActivationConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.ActivationConfig{}, fmt.Errorf("decode latest config response: %w", err)
	}

	return cfg, nil
}

// TriggerActivation implements [ActivationAdapter].
func (a *activationAdapter) TriggerActivation(ctx context.Context, name string, req models.TriggerRequest) (json.RawMessage, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/activations/{name}:trigger")
	if err != nil {
		return nil, fmt.Errorf("trigger activation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rawJSON(resp.Body()), nil
}
