// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// PayloadType defines how the destination treats the uploaded users.
// The Graph API call is the same for both variants; the value is carried
// through configuration and run history.
type PayloadType string

const (
	// CreateUser uploads records into a newly created custom audience.
	CreateUser PayloadType = "CREATE_USER"

	// UpdateUser uploads records to refresh an existing custom audience.
	UpdateUser PayloadType = "UPDATE_USER"
)

// PayloadTypes lists every supported [PayloadType] in declaration order.
var PayloadTypes = []PayloadType{CreateUser, UpdateUser}

// ParsePayloadType converts s into a [PayloadType]. It returns an error
// wrapping [ErrInvalidPayloadType] for any other value.
func ParsePayloadType(s string) (PayloadType, error) {
	for _, pt := range PayloadTypes {
		if string(pt) == s {
			return pt, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPayloadType, s)
}

// IsValid reports whether p is one of [PayloadTypes].
func (p PayloadType) IsValid() bool {
	_, err := ParsePayloadType(string(p))
	return err == nil
}

func (p PayloadType) String() string {
	return string(p)
}

// UnmarshalJSON rejects payload types outside of [PayloadTypes].
func (p *PayloadType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("payload type must be a string: %w", err)
	}

	parsed, err := ParsePayloadType(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
