// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GraphError is the error object the Graph API embeds in failed responses
// and in debug_token data.
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Code      int    `json:"code,omitempty"`
	Subcode   int    `json:"error_subcode,omitempty"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

// TokenDebugInfo is the "data" object of a debug_token response.
type TokenDebugInfo struct {
	AppID     string      `json:"app_id,omitempty"`
	Type      string      `json:"type,omitempty"`
	IsValid   bool        `json:"is_valid"`
	ExpiresAt int64       `json:"expires_at,omitempty"`
	Scopes    []string    `json:"scopes,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Error     *GraphError `json:"error,omitempty"`
}

// ErrorMessage returns the platform-reported reason for an invalid token,
// or an empty string.
func (t TokenDebugInfo) ErrorMessage() string {
	if t.Error == nil {
		return ""
	}
	return t.Error.Message
}

// DebugTokenResponse wraps [TokenDebugInfo] as returned by /debug_token.
type DebugTokenResponse struct {
	Data TokenDebugInfo `json:"data"`
}

// AdAccount is the subset of the ad account resource the client reads.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id,omitempty"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status,omitempty"`
	Currency      string `json:"currency,omitempty"`
}
