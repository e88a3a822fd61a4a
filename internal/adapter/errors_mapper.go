// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/audience-sync/models"
	"github.com/go-resty/resty/v2"
)

type graphErrorEnvelope struct {
	Error *models.GraphError `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	statusErr := &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Message:    platformMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.Err = ErrForbidden
	case http.StatusNotFound:
		statusErr.Err = ErrNotFound
	case http.StatusConflict:
		statusErr.Err = ErrConflict
	case http.StatusTooManyRequests:
		statusErr.Err = ErrTooManyRequests
	case http.StatusBadGateway:
		statusErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.Err = ErrInternalServerError
	default:
		statusErr.Err = ErrUnexpectedStatus
	}

	return statusErr
}

// expectOK accepts only 200 OK. Other 2xx answers become a *StatusError
// wrapping ErrUnexpectedStatus.
func expectOK(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
			Err:        ErrUnexpectedStatus,
		}
	}
	return nil
}

// platformMessage extracts error.message from a Graph API error body.
func platformMessage(body []byte) string {
	var envelope graphErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return ""
	}
	return envelope.Error.Message
}
