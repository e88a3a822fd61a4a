// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress        = errors.New("empty address")
	ErrInvalidResponseBody = errors.New("response body is not valid JSON")
)

// StatusError is returned for every non-2xx response, and for 2xx answers
// other than 200 on calls that require 200. It keeps the raw body
// for logging and unwraps to the sentinel matching the status code.
type StatusError struct {
	StatusCode int
	Body       string
	// Message is the platform error message when the body carried one.
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Err, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Err, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
