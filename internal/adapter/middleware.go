// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/utils"
	"github.com/go-resty/resty/v2"
)

// RunIDHeader carries the sync run ID on outbound requests.
const RunIDHeader = "X-Run-ID"

// withRunID copies the run ID from the request context into [RunIDHeader].
func withRunID(client *utils.HTTPClient) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if runID, ok := utils.GetRunIDFromContext(req.Context()); ok {
			req.SetHeader(RunIDHeader, runID)
		}
		return nil
	})
}

// withLogging logs every completed round trip. Only the URL path is logged:
// query strings may hold access tokens.
func withLogging(client *utils.HTTPClient, log *logger.Logger) {
	if log == nil {
		return
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		event := log.Debug()
		if runID, ok := utils.GetRunIDFromContext(resp.Request.Context()); ok {
			event = event.Str("run_id", runID)
		}

		path := ""
		if raw := resp.Request.RawRequest; raw != nil && raw.URL != nil {
			path = raw.URL.Path
		}

		event.
			Str("method", resp.Request.Method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int("size", len(resp.Body())).
			Msg("outbound request")
		return nil
	})
}
