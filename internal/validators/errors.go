// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists the fields that failed validation together with a
// human readable reason for each. It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface. Fields are reported in name order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	reasons := make([]string, 0, len(names))
	for _, name := range names {
		reasons = append(reasons, e.Fields[name])
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(reasons, "; "))
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
