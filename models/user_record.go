// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserRecord is a single CRM row to be matched against the platform's users.
// Records are supplied by the caller in order and are never persisted.
type UserRecord struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
}

// RecordFields lists the record fields a destination consumes, in the order
// they appear in an audience payload row.
var RecordFields = []string{"email", "phone", "first_name"}
