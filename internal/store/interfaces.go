// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the run history of audience syncs.
//
// A [DB] wraps *sql.DB together with its [Dialect] and an
// [ErrorClassificator] for driver errors. PostgreSQL is reached through the
// pgx stdlib driver and SQLite through mattn/go-sqlite3; the dialect is
// picked from the DSN by [NewConnect]. Queries are built with squirrel so the
// same repository code runs on both.
package store

import (
	"context"

	"github.com/MKhiriev/audience-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RunRepository stores one row per sync invocation.
type RunRepository interface {
	// SaveRun inserts run. Returns [ErrRunAlreadyExists] when run.RunID is
	// already stored.
	SaveRun(ctx context.Context, run models.RunResult) error

	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]models.RunResult, error)
}

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
