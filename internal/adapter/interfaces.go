// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the remote APIs the
// tools talk to: the Meta Graph API and the local activation service.
//
// Both are resty based. Non-2xx responses are mapped by mapHTTPError to a
// [*StatusError] that unwraps to the sentinel values in errors.go, so callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401) and still log the
// status code and body. Transport failures are wrapped with the call name.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/audience-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GraphAdapter talks to the Meta Graph API on behalf of one access token.
type GraphAdapter interface {
	// SetToken stores the access token used by every subsequent request.
	SetToken(token string)

	// Token returns the stored access token, or an empty string.
	Token() string

	// DebugToken inspects the stored token via GET /{version}/debug_token.
	// The returned info is decoded even when the token is invalid.
	DebugToken(ctx context.Context) (models.TokenDebugInfo, error)

	// GetAdAccount reads GET /{version}/{adAccountID} with bearer auth.
	GetAdAccount(ctx context.Context, adAccountID string) (models.AdAccount, error)

	// CreateCustomAudience posts payload to
	// POST /{version}/{adAccountID}/customaudiences and returns the raw JSON
	// response.
	CreateCustomAudience(ctx context.Context, adAccountID string, payload models.AudiencePayload) (json.RawMessage, error)
}

// ActivationAdapter talks to the activation service REST API.
type ActivationAdapter interface {
	// TestConnection posts to /connect and reports the status code and body.
	// A non-2xx answer is returned as a status, not an error.
	TestConnection(ctx context.Context) (models.ConnectionStatus, error)

	// CreateConfig stores a new config version via POST /configs.
	CreateConfig(ctx context.Context, cfg models.ActivationConfig) (json.RawMessage, error)

	// GetLatestConfig fetches GET /configs:getLatest.
	GetLatestConfig(ctx context.Context) (models.ActivationConfig, error)

	// TriggerActivation posts req to /activations/{name}:trigger.
	TriggerActivation(ctx context.Context, name string, req models.TriggerRequest) (json.RawMessage, error)
}
