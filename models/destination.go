// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// AdAccountPrefix is the prefix the Graph API expects on ad account IDs.
	AdAccountPrefix = "act_"

	// DefaultAudienceName is used when no audience name is configured.
	DefaultAudienceName = "Tightlock CRM Audience"

	// DestinationType is the connector type name used in activation configs.
	DestinationType = "META_MARKETING"
)

// DestinationSettings is the raw, user-supplied shape of a Meta Marketing
// destination. It is what configuration files and activation configs carry;
// use [NewDestination] to turn it into a validated [Destination].
type DestinationSettings struct {
	AccessToken  string      `json:"access_token" validate:"required"`
	AdAccountID  string      `json:"ad_account_id" validate:"required"`
	PayloadType  PayloadType `json:"payload_type" validate:"required,oneof=CREATE_USER UPDATE_USER"`
	AudienceName string      `json:"audience_name,omitempty"`
}

// Destination is the validated, immutable configuration of the audience
// sync client. The zero value is not usable; construct with [NewDestination].
type Destination struct {
	accessToken  string
	adAccountID  string
	payloadType  PayloadType
	audienceName string
}

// NewDestination validates settings and returns the resulting [Destination].
//
// The ad account ID is normalized with [NormalizeAdAccountID] and an empty
// audience name falls back to [DefaultAudienceName]. An empty payload type
// defaults to [CreateUser].
//
// Returns an error wrapping [ErrMissingCredentials] when the access token or
// the ad account ID is blank, or [ErrInvalidPayloadType] for an unknown
// payload type.
func NewDestination(settings DestinationSettings) (Destination, error) {
	token := strings.TrimSpace(settings.AccessToken)
	account := strings.TrimSpace(settings.AdAccountID)
	if token == "" || account == "" {
		return Destination{}, ErrMissingCredentials
	}

	payloadType := settings.PayloadType
	if payloadType == "" {
		payloadType = CreateUser
	}
	if !payloadType.IsValid() {
		return Destination{}, fmt.Errorf("%w: %q", ErrInvalidPayloadType, string(payloadType))
	}

	name := strings.TrimSpace(settings.AudienceName)
	if name == "" {
		name = DefaultAudienceName
	}

	return Destination{
		accessToken:  token,
		adAccountID:  NormalizeAdAccountID(account),
		payloadType:  payloadType,
		audienceName: name,
	}, nil
}

// ParseDestination decodes a JSON destination document and validates it
// with [NewDestination]. Unknown keys are rejected.
func ParseDestination(data []byte) (Destination, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var settings DestinationSettings
	if err := dec.Decode(&settings); err != nil {
		return Destination{}, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}

	return NewDestination(settings)
}

// NormalizeAdAccountID prepends [AdAccountPrefix] to id unless it is already
// present. Applying it more than once yields the same string.
func NormalizeAdAccountID(id string) string {
	if strings.HasPrefix(id, AdAccountPrefix) {
		return id
	}

	return AdAccountPrefix + id
}

// AccessToken returns the Graph API access token.
func (d Destination) AccessToken() string { return d.accessToken }

// AdAccountID returns the normalized ad account ID (always prefixed).
func (d Destination) AdAccountID() string { return d.adAccountID }

// PayloadType returns the configured payload type.
func (d Destination) PayloadType() PayloadType { return d.payloadType }

// AudienceName returns the custom audience name.
func (d Destination) AudienceName() string { return d.audienceName }

// Settings returns the destination in its raw form, e.g. for embedding into
// an activation config.
func (d Destination) Settings() DestinationSettings {
	return DestinationSettings{
		AccessToken:  d.accessToken,
		AdAccountID:  d.adAccountID,
		PayloadType:  d.payloadType,
		AudienceName: d.audienceName,
	}
}

// String implements [fmt.Stringer] without exposing the access token.
func (d Destination) String() string {
	return fmt.Sprintf("%s{account=%s, payload_type=%s, audience=%q}", DestinationType, d.adAccountID, d.payloadType, d.audienceName)
}
