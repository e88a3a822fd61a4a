// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/audience-sync/internal/adapter"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/store"
	"github.com/MKhiriev/audience-sync/internal/utils"
	"github.com/MKhiriev/audience-sync/models"
)

// BatchSize is the advertised maximum number of records per SendData call.
// Records are not split into batches.
const BatchSize = 10000

type audienceSyncService struct {
	destination models.Destination
	graph       adapter.GraphAdapter
	// runs is nil when run history is disabled
	runs store.RunRepository

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAudienceSyncService binds dest to graph and installs the destination's
// access token on the adapter. runs may be nil.
func NewAudienceSyncService(dest models.Destination, graph adapter.GraphAdapter, runs store.RunRepository, logger *logger.Logger) (AudienceSyncService, error) {
	if graph == nil {
		return nil, ErrNoGraphAdapter
	}
	if dest.AccessToken() == "" || dest.AdAccountID() == "" {
		return nil, ErrIncompleteDestination
	}

	graph.SetToken(dest.AccessToken())

	return &audienceSyncService{
		destination: dest,
		graph:       graph,
		runs:        runs,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *audienceSyncService) CheckTokenValidity(ctx context.Context) bool {
	log := s.loggerFor(ctx)

	info, err := s.graph.DebugToken(ctx)
	if err != nil {
		logRequestError(log, err, "error checking access token")
		return false
	}

	if !info.IsValid {
		log.Error().
			Str("func", "audienceSyncService.CheckTokenValidity").
			Str("reason", info.ErrorMessage()).
			Msg("access token is invalid")
		return false
	}

	log.Info().Msg("access token is valid")
	return true
}

func (s *audienceSyncService) CheckAccountAccess(ctx context.Context) bool {
	log := s.loggerFor(ctx)

	account, err := s.graph.GetAdAccount(ctx, s.destination.AdAccountID())
	if err != nil {
		logRequestError(log, err, "error accessing ad account")
		return false
	}

	log.Info().
		Str("ad_account_id", s.destination.AdAccountID()).
		Str("account_name", account.Name).
		Msg("ad account access confirmed")
	return true
}

func (s *audienceSyncService) BuildPayload(records []models.UserRecord) models.AudiencePayload {
	rows := make([]models.AudienceRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, models.AudienceRow{
			utils.HashString(record.Email),
			utils.HashString(record.Phone),
			record.FirstName,
		})
	}

	return models.AudiencePayload{
		Name:               s.destination.AudienceName(),
		Subtype:            models.AudienceSubtype,
		Description:        models.AudienceDescription,
		CustomerFileSource: models.CustomerFileSource,
		Schema:             models.AudienceSchema(),
		Data:               rows,
	}
}

func (s *audienceSyncService) SendData(ctx context.Context, records []models.UserRecord, dryRun bool) *models.SendResult {
	runID := s.ids.Generate()
	ctx = utils.WithRunID(ctx, runID)
	log := s.loggerFor(ctx)

	log.Info().
		Int("records", len(records)).
		Bool("dry_run", dryRun).
		Str("destination", s.destination.String()).
		Msg("sending data")

	if !s.CheckTokenValidity(ctx) {
		log.Error().Msg("invalid access token, generate a new token")
		s.recordRun(ctx, s.failedRun(runID, len(records), dryRun, MsgInvalidAccessToken))
		return nil
	}

	if !s.CheckAccountAccess(ctx) {
		log.Error().Msg("unable to access ad account, check the account ID and permissions")
		s.recordRun(ctx, s.failedRun(runID, len(records), dryRun, MsgAdAccountInaccessible))
		return nil
	}

	payload := s.BuildPayload(records)

	if dryRun {
		log.Info().
			Str("audience", payload.Name).
			Int("rows", len(payload.Data)).
			Msg("dry run: payload built, nothing submitted")
		s.recordRun(ctx, s.successfulRun(runID, len(records), dryRun))
		return &models.SendResult{DryRun: true, Payload: &payload}
	}

	response, err := s.graph.CreateCustomAudience(ctx, s.destination.AdAccountID(), payload)
	if err != nil {
		logRequestError(log, err, "error creating or updating custom audience")
		s.recordRun(ctx, s.failedRun(runID, len(records), dryRun, err.Error()))
		return nil
	}

	log.Info().RawJSON("response", response).Msg("custom audience created or updated")
	s.recordRun(ctx, s.successfulRun(runID, len(records), dryRun))

	return &models.SendResult{DryRun: false, Payload: &payload, Response: response}
}

func (s *audienceSyncService) Validate(ctx context.Context) models.ValidationResult {
	if !s.CheckTokenValidity(ctx) {
		return models.ValidationResult{IsValid: false, ErrorMessages: []string{MsgInvalidAccessToken}}
	}
	if !s.CheckAccountAccess(ctx) {
		return models.ValidationResult{IsValid: false, ErrorMessages: []string{MsgAdAccountInaccessible}}
	}
	return models.ValidationResult{IsValid: true, ErrorMessages: []string{}}
}

func (s *audienceSyncService) Schema() models.ProtocolSchema {
	return models.DestinationSchema()
}

func (s *audienceSyncService) Fields() []string {
	fields := make([]string, len(models.RecordFields))
	copy(fields, models.RecordFields)
	return fields
}

func (s *audienceSyncService) BatchSize() int {
	return BatchSize
}

func (s *audienceSyncService) successfulRun(runID string, records int, dryRun bool) models.RunResult {
	return models.RunResult{
		RunID:          runID,
		Destination:    models.DestinationType,
		AdAccountID:    s.destination.AdAccountID(),
		PayloadType:    s.destination.PayloadType().String(),
		SuccessfulHits: records,
		ErrorMessages:  []string{},
		DryRun:         dryRun,
		CreatedAt:      s.now().UTC(),
	}
}

func (s *audienceSyncService) failedRun(runID string, records int, dryRun bool, message string) models.RunResult {
	return models.RunResult{
		RunID:         runID,
		Destination:   models.DestinationType,
		AdAccountID:   s.destination.AdAccountID(),
		PayloadType:   s.destination.PayloadType().String(),
		FailedHits:    records,
		ErrorMessages: []string{message},
		DryRun:        dryRun,
		CreatedAt:     s.now().UTC(),
	}
}

// recordRun logs run and stores it when run history is enabled. Storage
// failures are logged only.
func (s *audienceSyncService) recordRun(ctx context.Context, run models.RunResult) {
	log := s.loggerFor(ctx)

	log.Info().
		Str("ad_account_id", run.AdAccountID).
		Int("successful_hits", run.SuccessfulHits).
		Int("failed_hits", run.FailedHits).
		Strs("error_messages", run.ErrorMessages).
		Bool("dry_run", run.DryRun).
		Msg("run finished")

	if s.runs == nil {
		return
	}

	if err := s.runs.SaveRun(ctx, run); err != nil {
		log.Warn().Err(err).
			Str("func", "audienceSyncService.recordRun").
			Msg("failed to store run in history")
	}
}

func (s *audienceSyncService) loggerFor(ctx context.Context) *logger.Logger {
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		return &logger.Logger{Logger: s.logger.With().Str("run_id", runID).Logger()}
	}
	return s.logger
}

// logRequestError logs err with the status code and body when the remote
// API answered, and as a transport failure otherwise.
func logRequestError(log *logger.Logger, err error, msg string) {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		log.Error().
			Int("status", statusErr.StatusCode).
			Str("body", statusErr.Body).
			Str("reason", statusErr.Message).
			Msg(msg)
		return
	}

	log.Error().Err(err).Msg(msg)
}
