// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAdAccountID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "123", want: "act_123"},
		{in: "act_123", want: "act_123"},
		{in: "", want: "act_"},
		{in: "ACT_9", want: "act_ACT_9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeAdAccountID(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeAdAccountID(got), "normalization is idempotent")
		})
	}
}

func TestNewDestination(t *testing.T) {
	dest, err := NewDestination(DestinationSettings{
		AccessToken: " token ",
		AdAccountID: "123",
		PayloadType: UpdateUser,
	})
	require.NoError(t, err)

	assert.Equal(t, "token", dest.AccessToken())
	assert.Equal(t, "act_123", dest.AdAccountID())
	assert.Equal(t, UpdateUser, dest.PayloadType())
	assert.Equal(t, DefaultAudienceName, dest.AudienceName())
}

func TestNewDestination_Defaults(t *testing.T) {
	dest, err := NewDestination(DestinationSettings{AccessToken: "t", AdAccountID: "act_1", AudienceName: "VIP"})
	require.NoError(t, err)

	assert.Equal(t, CreateUser, dest.PayloadType())
	assert.Equal(t, "VIP", dest.AudienceName())
	assert.Equal(t, "act_1", dest.AdAccountID())
}

func TestNewDestination_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings DestinationSettings
		wantErr  error
	}{
		{name: "no token", settings: DestinationSettings{AdAccountID: "1"}, wantErr: ErrMissingCredentials},
		{name: "blank token", settings: DestinationSettings{AccessToken: "  ", AdAccountID: "1"}, wantErr: ErrMissingCredentials},
		{name: "no account", settings: DestinationSettings{AccessToken: "t"}, wantErr: ErrMissingCredentials},
		{name: "bad payload type", settings: DestinationSettings{AccessToken: "t", AdAccountID: "1", PayloadType: "DELETE_USER"}, wantErr: ErrInvalidPayloadType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDestination(tt.settings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDestination(t *testing.T) {
	dest, err := ParseDestination([]byte(`{"access_token":"t","ad_account_id":"42","payload_type":"CREATE_USER","audience_name":"A"}`))
	require.NoError(t, err)
	assert.Equal(t, "act_42", dest.AdAccountID())
	assert.Equal(t, "A", dest.AudienceName())

	_, err = ParseDestination([]byte(`{"access_token":"t","ad_account_id":"42","extra":1}`))
	assert.ErrorIs(t, err, ErrInvalidDestination)

	_, err = ParseDestination([]byte(`{"access_token":"t","ad_account_id":"42","payload_type":"NOPE"}`))
	assert.ErrorIs(t, err, ErrInvalidDestination)
	assert.Contains(t, err.Error(), "invalid payload type")

	_, err = ParseDestination([]byte(`{"ad_account_id":"42"}`))
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestDestination_StringHidesToken(t *testing.T) {
	dest, err := NewDestination(DestinationSettings{AccessToken: "super-secret", AdAccountID: "1"})
	require.NoError(t, err)

	assert.NotContains(t, dest.String(), "super-secret")
	assert.Contains(t, dest.String(), "act_1")
}

func TestDestination_SettingsRoundTrip(t *testing.T) {
	dest, err := NewDestination(DestinationSettings{AccessToken: "t", AdAccountID: "1", PayloadType: UpdateUser})
	require.NoError(t, err)

	again, err := NewDestination(dest.Settings())
	require.NoError(t, err)
	assert.Equal(t, dest, again)
}

func TestPayloadType(t *testing.T) {
	pt, err := ParsePayloadType("UPDATE_USER")
	require.NoError(t, err)
	assert.Equal(t, UpdateUser, pt)

	_, err = ParsePayloadType("create_user")
	assert.ErrorIs(t, err, ErrInvalidPayloadType)

	assert.True(t, CreateUser.IsValid())
	assert.False(t, PayloadType("").IsValid())

	var decoded PayloadType
	assert.Error(t, decoded.UnmarshalJSON([]byte(`7`)))
	require.NoError(t, decoded.UnmarshalJSON([]byte(`"CREATE_USER"`)))
	assert.Equal(t, CreateUser, decoded)
}

func TestSchemas(t *testing.T) {
	assert.Equal(t, []string{"EMAIL", "PHONE", "FN"}, AudienceSchema())
	assert.Equal(t, []string{"email", "phone", "first_name"}, RecordFields)

	schema := DestinationSchema()
	assert.Equal(t, DestinationType, schema.Type)
	require.Len(t, schema.Fields, 4)
	assert.Equal(t, DefaultAudienceName, schema.Fields[3].Default)
}

func TestRunResult_Successful(t *testing.T) {
	assert.True(t, RunResult{SuccessfulHits: 3}.Successful())
	assert.False(t, RunResult{FailedHits: 1}.Successful())
	assert.False(t, RunResult{ErrorMessages: []string{"x"}}.Successful())
}

func TestTriggerRequestAndRefs(t *testing.T) {
	assert.Equal(t, TriggerRequest{DryRun: 1}, NewTriggerRequest(true))
	assert.Equal(t, TriggerRequest{DryRun: 0}, NewTriggerRequest(false))
	assert.Equal(t, Ref{Ref: "#/sources/s"}, SourceRef("s"))
	assert.Equal(t, Ref{Ref: "#/destinations/d"}, DestinationRef("d"))
}
