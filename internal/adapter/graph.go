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
	"github.com/go-resty/resty/v2"
)

type graphAdapter struct {
	client  *utils.HTTPClient
	version string

	token string

	logger *logger.Logger
}

// NewGraphAdapter constructs a resty implementation of [GraphAdapter].
// It normalises graphCfg.BaseURL, bounds every request by
// graphCfg.RequestTimeout and uses graphCfg.APIVersion as the first path
// segment of every call.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewGraphAdapter(graphCfg config.Graph, log *logger.Logger) (GraphAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(graphCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid graph api base url: %w", err)
	}

	version := strings.Trim(strings.TrimSpace(graphCfg.APIVersion), "/")
	if version == "" {
		version = config.DefaultGraphVersion
	}

	client := utils.NewHTTPClient().WithTimeout(graphCfg.RequestTimeout)
	client.SetBaseURL(baseURL)
	withRunID(client)
	withLogging(client, log)

	return &graphAdapter{client: client, version: version, logger: log}, nil
}

// SetToken implements [GraphAdapter]. The token is whitespace-trimmed.
func (g *graphAdapter) SetToken(token string) {
	g.token = strings.TrimSpace(token)
}

// Token implements [GraphAdapter].
func (g *graphAdapter) Token() string {
	return g.token
}

// DebugToken implements [GraphAdapter]. The token is both the inspected
// token and the credential of the call.
func (g *graphAdapter) DebugToken(ctx context.Context) (models.TokenDebugInfo, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("version", g.version).
		SetQueryParams(map[string]string{
			"input_token":  g.Token(),
			"access_token": g.Token(),
		}).
		Get("/{version}/debug_token")
	if err != nil {
		return models.TokenDebugInfo{}, fmt.Errorf("debug token request: %w", err)
	}
	if err = expectOK(resp); err != nil {
		return models.TokenDebugInfo{}, err
	}

	var debugResp models.DebugTokenResponse
	if err = json.Unmarshal(resp.Body(), &debugResp); err != nil {
		return models.TokenDebugInfo{}, fmt.Errorf("decode debug token response: %w", err)
	}

	g.logger.Debug().
		Bool("is_valid", debugResp.Data.IsValid).
		Str("app_id", debugResp.Data.AppID).
		Msg("token inspected")

	return debugResp.Data, nil
}

// GetAdAccount implements [GraphAdapter].
func (g *graphAdapter) GetAdAccount(ctx context.Context, adAccountID string) (models.AdAccount, error) {
	resp, err := g.authedRequest(ctx).
		SetPathParam("account", adAccountID).
		Get("/{version}/{account}")
	if err != nil {
		return models.AdAccount{}, fmt.Errorf("get ad account request: %w", err)
	}
	if err = expectOK(resp); err != nil {
		return models.AdAccount{}, err
	}

	var account models.AdAccount
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.AdAccount{}, fmt.Errorf("decode ad account response: %w", err)
	}

	return account, nil
}

// CreateCustomAudience implements [GraphAdapter].
func (g *graphAdapter) CreateCustomAudience(ctx context.Context, adAccountID string, payload models.AudiencePayload) (json.RawMessage, error) {
	resp, err := g.authedRequest(ctx).
		SetPathParam("account", adAccountID).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/{version}/{account}/customaudiences")
	if err != nil {
		return nil, fmt.Errorf("create custom audience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !json.Valid(resp.Body()) {
		return nil, fmt.Errorf("decode custom audience response: %w", ErrInvalidResponseBody)
	}

	return rawJSON(resp.Body()), nil
}

func (g *graphAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetPathParam("version", g.version)
	if token := g.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// rawJSON copies body into a json.RawMessage. An empty body becomes null.
func rawJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return json.RawMessage("null")
	}
	out := make(json.RawMessage, len(body))
	copy(out, body)
	return out
}
