// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the audience-sync tools.
//
// [AudienceSyncService] turns CRM records into a custom audience on the Meta
// Graph API: it checks the access token, checks ad account access, builds the
// hashed payload and submits it (or, in dry-run mode, only returns it).
// External failures never escape SendData; they are logged, recorded in the
// run history and reported as a nil result.
//
// [ActivationService] drives the activation service: connectivity probe,
// config management and activation triggers.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/audience-sync/models"
)

// AudienceSyncService pushes user records to one custom audience
// destination.
type AudienceSyncService interface {
	// CheckTokenValidity reports whether the platform considers the access
	// token valid. Failures are logged with the platform's reason.
	CheckTokenValidity(ctx context.Context) bool

	// CheckAccountAccess reports whether the ad account can be read with the
	// access token. Failures are logged with the response body.
	CheckAccountAccess(ctx context.Context) bool

	// BuildPayload converts records into the custom audience payload. It is
	// pure and deterministic.
	BuildPayload(records []models.UserRecord) models.AudiencePayload

	// SendData checks the token, then the account, then builds the payload
	// and submits it unless dryRun is set. It returns nil when no audience
	// mutation occurred because of an external failure.
	SendData(ctx context.Context, records []models.UserRecord, dryRun bool) *models.SendResult

	// Validate runs the token and account checks and reports the first
	// failure.
	Validate(ctx context.Context) models.ValidationResult

	// Schema describes the settings the destination accepts.
	Schema() models.ProtocolSchema

	// Fields lists the record fields the destination consumes.
	Fields() []string

	// BatchSize is the advertised maximum number of records per call.
	BatchSize() int
}

// ActivationService drives the activation service REST API.
type ActivationService interface {
	// Probe checks connectivity. A non-2xx answer is returned in the status,
	// only transport failures are errors.
	Probe(ctx context.Context) (models.ConnectionStatus, error)

	// CreateConfig stores cfg as the newest config version.
	CreateConfig(ctx context.Context, cfg models.ActivationConfig) (json.RawMessage, error)

	// LatestConfig returns the newest config version.
	LatestConfig(ctx context.Context) (models.ActivationConfig, error)

	// Trigger starts the named activation, as a dry run when dryRun is set.
	Trigger(ctx context.Context, name string, dryRun bool) (json.RawMessage, error)

	// ExampleConfig builds a BigQuery to Meta Marketing config that activates
	// dest weekly.
	ExampleConfig(dest models.Destination) (models.ActivationConfig, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces unique run identifiers.
type IDGenerator interface {
	Generate() string
}
