// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoGraphAdapter        = errors.New("graph adapter is required")
	ErrNoActivationAdapter   = errors.New("activation adapter is required")
	ErrEmptyActivationName   = errors.New("activation name is empty")
	ErrIncompleteDestination = errors.New("destination is not initialized")
)

// Messages recorded in a run result when a precondition fails.
const (
	MsgInvalidAccessToken    = "Invalid access token"
	MsgAdAccountInaccessible = "Unable to access ad account"
)
