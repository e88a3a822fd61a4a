// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/audience-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildInfo(t *testing.T) {
	out := BuildInfo("audiencesync", models.NewAppBuildInfo("1.2.3", "", "abc"))

	assert.Contains(t, out, "audiencesync")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "N/A")
}

func TestSendResult_Nil(t *testing.T) {
	out := SendResult(nil)

	assert.Contains(t, out, "AUDIENCE SYNC")
	assert.Contains(t, out, "FAILED")
}

func TestSendResult_DryRunShowsPayload(t *testing.T) {
	payload := models.AudiencePayload{
		Name:   "Tightlock CRM Audience",
		Schema: models.AudienceSchema(),
		Data:   []models.AudienceRow{{"e", "p", "Jo"}},
	}

	out := SendResult(&models.SendResult{DryRun: true, Payload: &payload})

	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "Tightlock CRM Audience")
	assert.Contains(t, out, "EMAIL, PHONE, FN")
	assert.Contains(t, out, `"Jo"`)
	assert.NotContains(t, out, "Response")
}

func TestSendResult_LiveShowsResponse(t *testing.T) {
	payload := models.AudiencePayload{Name: "A", Data: []models.AudienceRow{}}

	out := SendResult(&models.SendResult{Payload: &payload, Response: json.RawMessage(`{"id":"238"}`)})

	assert.Contains(t, out, "live")
	assert.Contains(t, out, "Response")
	assert.Contains(t, out, `"id": "238"`)
	assert.NotContains(t, out, "Payload")
}

func TestRunHistory(t *testing.T) {
	assert.Contains(t, RunHistory(nil), "no runs recorded")

	runs := []models.RunResult{
		{
			RunID:          "run-2",
			AdAccountID:    "act_1",
			SuccessfulHits: 3,
			ErrorMessages:  []string{},
			CreatedAt:      time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		},
		{
			RunID:         "run-1",
			AdAccountID:   "act_1",
			FailedHits:    3,
			ErrorMessages: []string{"Invalid access token"},
			DryRun:        true,
			CreatedAt:     time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		},
	}

	out := RunHistory(runs)

	assert.Contains(t, out, "RUN HISTORY")
	assert.Contains(t, out, "2026-10-19 12:00:00")
	assert.Contains(t, out, "Invalid access token")
	assert.Less(t, strings.Index(out, "run-2"), strings.Index(out, "run-1"), "order is kept")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"long-value", "x"}, {"s", "y"}})
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "│"), strings.Index(lines[3], "│"))
}

func TestConnectionStatus(t *testing.T) {
	assert.Contains(t, ConnectionStatus(models.ConnectionStatus{StatusCode: http.StatusOK}), "REACHABLE")
	assert.Contains(t, ConnectionStatus(models.ConnectionStatus{StatusCode: http.StatusUnauthorized}), "UNHEALTHY")
}

func TestJSONAndError(t *testing.T) {
	assert.Contains(t, JSON("TRIGGER", json.RawMessage(`{"ok":true}`)), `"ok": true`)
	assert.Contains(t, JSON("TRIGGER", nil), "-")
	assert.Contains(t, JSON("TRIGGER", json.RawMessage(`not json`)), "not json")
	assert.Contains(t, Error("PROBE", errors.New("connection refused")), "ERROR: connection refused")
}

func TestActivationConfig(t *testing.T) {
	out := ActivationConfig("LATEST CONFIG", models.ActivationConfig{Label: "Example"})

	assert.Contains(t, out, "LATEST CONFIG")
	assert.Contains(t, out, `"label": "Example"`)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ünïcödé...", fitText("ünïcödéünïcödé", 10))
}
