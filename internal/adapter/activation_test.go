// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// newActivationServer serves r under /api/v1 and rejects requests without the
// API key.
func newActivationServer(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	root := chi.NewRouter()
	root.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get(APIKeyHeader) != testAPIKey {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	root.Mount("/api/v1", r)

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return srv
}

func newTestActivationAdapter(t *testing.T, serverURL, apiKey string) ActivationAdapter {
	t.Helper()
	// the service address is host[:port] without a scheme
	a, err := NewActivationAdapter(config.Activation{
		Address:        strings.TrimPrefix(serverURL, "http://"),
		APIKey:         apiKey,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewActivationAdapter_EmptyAddress(t *testing.T) {
	_, err := NewActivationAdapter(config.Activation{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestTestConnection(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/connect", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	srv := newActivationServer(t, r)

	status, err := newTestActivationAdapter(t, srv.URL, testAPIKey).TestConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatus{StatusCode: http.StatusOK, Body: "ok"}, status)
}

func TestTestConnection_WrongKeyIsReportedAsStatus(t *testing.T) {
	srv := newActivationServer(t, chi.NewRouter())

	status, err := newTestActivationAdapter(t, srv.URL, "wrong").TestConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status.StatusCode)
}

func TestTestConnection_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestActivationAdapter(t, url, testAPIKey).TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect request")
}

func TestCreateConfig(t *testing.T) {
	cfg := models.ActivationConfig{
		Label: "Example",
		Value: models.ActivationConfigValue{
			Activations: []models.Activation{{
				Name:        "example_activation",
				Source:      models.SourceRef("example_bigquery_table"),
				Destination: models.DestinationRef("example_meta"),
				Schedule:    "@weekly",
			}},
		},
	}

	r := chi.NewRouter()
	r.Post("/configs", func(w http.ResponseWriter, r *http.Request) {
		var got models.ActivationConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, cfg.Label, got.Label)
		assert.Equal(t, cfg.Value.Activations, got.Value.Activations)
		writeJSON(w, http.StatusOK, `{"label":"Example"}`)
	})
	srv := newActivationServer(t, r)

	resp, err := newTestActivationAdapter(t, srv.URL, testAPIKey).CreateConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Example"}`, string(resp))
}

func TestCreateConfig_Conflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/configs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"detail":"label exists"}`)
	})
	srv := newActivationServer(t, r)

	_, err := newTestActivationAdapter(t, srv.URL, testAPIKey).CreateConfig(context.Background(), models.ActivationConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "label exists")
}

func TestGetLatestConfig(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/configs:getLatest", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"label": "Example",
			"value": {
				"external_connections": [],
				"sources": {"example_bigquery_table": {"type": "BIGQUERY", "dataset": "d", "table": "t"}},
				"destinations": {},
				"activations": [{"name": "example_activation", "source": {"$ref": "#/sources/example_bigquery_table"}, "destination": {"$ref": "#/destinations/example_meta"}, "schedule": "@weekly"}],
				"secrets": {}
			}
		}`)
	})
	srv := newActivationServer(t, r)

	cfg, err := newTestActivationAdapter(t, srv.URL, testAPIKey).GetLatestConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Example", cfg.Label)
	require.Len(t, cfg.Value.Activations, 1)
	assert.Equal(t, "#/sources/example_bigquery_table", cfg.Value.Activations[0].Source.Ref)
	assert.Contains(t, cfg.Value.Sources, "example_bigquery_table")
}

func TestGetLatestConfig_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		srv := newActivationServer(t, chi.NewRouter())

		_, err := newTestActivationAdapter(t, srv.URL, testAPIKey).GetLatestConfig(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("bad body", func(t *testing.T) {
		r := chi.NewRouter()
		r.Get("/configs:getLatest", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `not json`)
		})
		srv := newActivationServer(t, r)

		_, err := newTestActivationAdapter(t, srv.URL, testAPIKey).GetLatestConfig(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode latest config response")
	})
}

func TestTriggerActivation(t *testing.T) {
	tests := []struct {
		name   string
		dryRun bool
		want   int
	}{
		{"dry run", true, 1},
		{"live", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/activations/{name}:trigger", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "example_activation", chi.URLParam(r, "name"))

				var body map[string]int
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, map[string]int{"dry_run": tt.want}, body)

				writeJSON(w, http.StatusOK, `{"status":"triggered"}`)
			})
			srv := newActivationServer(t, r)

			resp, err := newTestActivationAdapter(t, srv.URL, testAPIKey).
				TriggerActivation(context.Background(), "example_activation", models.NewTriggerRequest(tt.dryRun))
			require.NoError(t, err)
			assert.JSONEq(t, `{"status":"triggered"}`, string(resp))
		})
	}
}

func TestTriggerActivation_Unauthorized(t *testing.T) {
	srv := newActivationServer(t, chi.NewRouter())

	_, err := newTestActivationAdapter(t, srv.URL, "wrong").
		TriggerActivation(context.Background(), "example_activation", models.NewTriggerRequest(true))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
