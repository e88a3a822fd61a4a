// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SchemaField describes one setting accepted by a destination.
type SchemaField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

// ProtocolSchema describes the settings of a connector type.
type ProtocolSchema struct {
	Type   string        `json:"type"`
	Fields []SchemaField `json:"fields"`
}

// DestinationSchema returns the settings schema of the Meta Marketing
// destination.
func DestinationSchema() ProtocolSchema {
	return ProtocolSchema{
		Type: DestinationType,
		Fields: []SchemaField{
			{Name: "access_token", Type: "string", Required: true, Description: "Access token for Meta Marketing API"},
			{Name: "ad_account_id", Type: "string", Required: true, Description: "Ad account ID"},
			{Name: "payload_type", Type: "PayloadType", Required: true, Description: "Type of payload (CREATE_USER or UPDATE_USER)"},
			{Name: "audience_name", Type: "string", Default: DefaultAudienceName, Description: "Name of the custom audience to create or update"},
		},
	}
}
