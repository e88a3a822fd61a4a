// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RunResult summarizes one SendData invocation. It is logged and stored in
// the run history.
type RunResult struct {
	RunID          string    `json:"run_id"`
	Destination    string    `json:"destination"`
	AdAccountID    string    `json:"ad_account_id"`
	PayloadType    string    `json:"payload_type"`
	SuccessfulHits int       `json:"successful_hits"`
	FailedHits     int       `json:"failed_hits"`
	ErrorMessages  []string  `json:"error_messages"`
	DryRun         bool      `json:"dry_run"`
	CreatedAt      time.Time `json:"created_at"`
}

// Successful reports whether the run had no failed hits.
func (r RunResult) Successful() bool {
	return r.FailedHits == 0 && len(r.ErrorMessages) == 0
}

// SendResult is what SendData returns when the operation went through.
// Payload holds the submitted body, or in dry-run mode the body that would
// have been submitted. Response holds the platform's JSON response and is
// empty for dry runs.
//
// A nil *SendResult means no audience mutation occurred.
type SendResult struct {
	DryRun   bool             `json:"dry_run"`
	Payload  *AudiencePayload `json:"payload,omitempty"`
	Response json.RawMessage  `json:"response,omitempty"`
}

// ValidationResult reports whether a destination is usable and why not.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	ErrorMessages []string `json:"error_messages"`
}
