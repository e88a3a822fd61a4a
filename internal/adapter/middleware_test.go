// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RunIDHeaderAndLogging(t *testing.T) {
	var gotRunID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRunID = r.Header.Get(RunIDHeader)
		writeJSON(w, http.StatusOK, `{"data":{"is_valid":true}}`)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.New(&buf, "test").SetLevel("debug")

	a, err := NewGraphAdapter(config.Graph{BaseURL: srv.URL, APIVersion: "v17.0", RequestTimeout: 5 * time.Second}, log)
	require.NoError(t, err)
	a.SetToken("secret-token")

	ctx := utils.WithRunID(context.Background(), "run-7")
	_, err = a.DebugToken(ctx)
	require.NoError(t, err)

	assert.Equal(t, "run-7", gotRunID)
	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-7"`)
	assert.Contains(t, out, `"path":"/v17.0/debug_token"`)
	assert.Contains(t, out, `"status":200`)
	assert.NotContains(t, out, "secret-token")
}

func TestMiddleware_NoRunID(t *testing.T) {
	var header []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Values(RunIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewActivationAdapter(config.Activation{Address: srv.URL, APIKey: "k", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.TestConnection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, header)
}
