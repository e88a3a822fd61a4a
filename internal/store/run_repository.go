// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/models"
)

const syncRunsTable = "sync_runs"

var syncRunsColumns = []string{
	"run_id",
	"destination",
	"ad_account_id",
	"payload_type",
	"successful_hits",
	"failed_hits",
	"error_messages",
	"dry_run",
	"created_at",
}

type runRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRunRepository returns a [RunRepository] over db. A nil log discards
// repository logs.
func NewRunRepository(db *DB, log *logger.Logger) RunRepository {
	if log == nil {
		log = logger.Nop()
	}

	return &runRepository{
		db:     db,
		logger: log,
	}
}

func (r *runRepository) SaveRun(ctx context.Context, run models.RunResult) error {
	log := r.logger

	errorMessages, err := encodeErrorMessages(run.ErrorMessages)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.statementBuilder().
		Insert(syncRunsTable).
		Columns(syncRunsColumns...).
		Values(
			run.RunID,
			run.Destination,
			run.AdAccountID,
			run.PayloadType,
			run.SuccessfulHits,
			run.FailedHits,
			errorMessages,
			run.DryRun,
			run.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "runRepository.SaveRun").
				Str("run_id", run.RunID).
				Msg("run already stored")
			return ErrRunAlreadyExists
		}

		log.Err(err).
			Str("func", "runRepository.SaveRun").
			Str("run_id", run.RunID).
			Str("classification", r.classify(err).String()).
			Msg("failed to insert run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *runRepository) ListRuns(ctx context.Context, limit int) ([]models.RunResult, error) {
	log := r.logger

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := r.db.statementBuilder().
		Select(syncRunsColumns...).
		From(syncRunsTable).
		OrderBy("created_at DESC", "run_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "runRepository.ListRuns").
			Int("limit", limit).
			Msg("failed to query runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.RunResult, 0, limit)
	for rows.Next() {
		var (
			run           models.RunResult
			errorMessages string
		)

		scanErr := rows.Scan(
			&run.RunID,
			&run.Destination,
			&run.AdAccountID,
			&run.PayloadType,
			&run.SuccessfulHits,
			&run.FailedHits,
			&errorMessages,
			&run.DryRun,
			&run.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "runRepository.ListRuns").
				Msg("failed to scan run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		if run.ErrorMessages, err = decodeErrorMessages(errorMessages); err != nil {
			return nil, fmt.Errorf("%w: run %s: %w", ErrScanningRows, run.RunID, err)
		}

		runs = append(runs, run)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "runRepository.ListRuns").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return runs, nil
}

func (r *runRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}

// error_messages is a JSON array stored as text on both dialects.
func encodeErrorMessages(messages []string) (string, error) {
	if messages == nil {
		messages = []string{}
	}
	b, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeErrorMessages(raw string) ([]string, error) {
	messages := []string{}
	if raw == "" {
		return messages, nil
	}
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
