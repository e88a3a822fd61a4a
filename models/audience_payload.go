// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// AudienceSubtype is the only custom audience subtype produced.
	AudienceSubtype = "CUSTOM"

	// AudienceDescription is attached to every audience payload.
	AudienceDescription = "Audience created from CRM data"

	// CustomerFileSource declares how the customer data was obtained.
	CustomerFileSource = "USER_PROVIDED_ONLY"
)

// Schema tags of the payload columns. The order matches [AudienceRow].
const (
	SchemaEmail     = "EMAIL"
	SchemaPhone     = "PHONE"
	SchemaFirstName = "FN"
)

// AudienceSchema returns a fresh copy of the payload column schema.
func AudienceSchema() []string {
	return []string{SchemaEmail, SchemaPhone, SchemaFirstName}
}

// AudienceRow is one payload data row: hex SHA-256 of the email, hex
// SHA-256 of the phone, and the first name in plain text.
//
// The first name is intentionally sent unhashed; the remote endpoint expects
// this exact row shape, so it must not be "fixed" here.
type AudienceRow [3]string

// AudiencePayload is the JSON body submitted to the customaudiences endpoint.
type AudiencePayload struct {
	Name               string        `json:"name"`
	Subtype            string        `json:"subtype"`
	Description        string        `json:"description"`
	CustomerFileSource string        `json:"customer_file_source"`
	Schema             []string      `json:"schema"`
	Data               []AudienceRow `json:"data"`
}
