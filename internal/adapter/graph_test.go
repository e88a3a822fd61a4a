// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraphAdapter(t *testing.T, serverURL string) GraphAdapter {
	t.Helper()
	a, err := NewGraphAdapter(config.Graph{
		BaseURL:        serverURL,
		APIVersion:     "v17.0",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	a.SetToken("test-token")
	return a
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewGraphAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewGraphAdapter(config.Graph{BaseURL: "  "}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestGraphAdapter_Token(t *testing.T) {
	a, err := NewGraphAdapter(config.Graph{BaseURL: "https://graph.facebook.com"}, logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, a.Token())
	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

func TestDebugToken_Valid(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{version}/debug_token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v17.0", chi.URLParam(r, "version"))
		assert.Equal(t, "test-token", r.URL.Query().Get("input_token"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		writeJSON(w, http.StatusOK, `{"data":{"app_id":"42","is_valid":true,"scopes":["ads_management"]}}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	info, err := newTestGraphAdapter(t, srv.URL).DebugToken(context.Background())
	require.NoError(t, err)
	assert.True(t, info.IsValid)
	assert.Equal(t, "42", info.AppID)
	assert.Equal(t, []string{"ads_management"}, info.Scopes)
}

func TestDebugToken_InvalidTokenIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"is_valid":false,"error":{"code":190,"message":"Session has expired"}}}`)
	}))
	defer srv.Close()

	info, err := newTestGraphAdapter(t, srv.URL).DebugToken(context.Background())
	require.NoError(t, err)
	assert.False(t, info.IsValid)
	assert.Equal(t, "Session has expired", info.ErrorMessage())
}

func TestDebugToken_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`)
	}))
	defer srv.Close()

	_, err := newTestGraphAdapter(t, srv.URL).DebugToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Invalid OAuth access token.", statusErr.Message)
}

func TestGetAdAccount(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{version}/{account}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "act_123", chi.URLParam(r, "account"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"id":"act_123","account_id":"123","name":"Main"}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	account, err := newTestGraphAdapter(t, srv.URL).GetAdAccount(context.Background(), "act_123")
	require.NoError(t, err)
	assert.Equal(t, models.AdAccount{ID: "act_123", AccountID: "123", Name: "Main"}, account)
}

func TestGetAdAccount_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"error":{"message":"no permission"}}`)
	}))
	defer srv.Close()

	_, err := newTestGraphAdapter(t, srv.URL).GetAdAccount(context.Background(), "act_123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "no permission")
}

func TestCreateCustomAudience(t *testing.T) {
	payload := models.AudiencePayload{
		Name:               "Tightlock CRM Audience",
		Subtype:            models.AudienceSubtype,
		Description:        models.AudienceDescription,
		CustomerFileSource: models.CustomerFileSource,
		Schema:             models.AudienceSchema(),
		Data:               []models.AudienceRow{{"e", "p", "Jo"}},
	}

	r := chi.NewRouter()
	r.Post("/{version}/{account}/customaudiences", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v17.0", chi.URLParam(r, "version"))
		assert.Equal(t, "act_123", chi.URLParam(r, "account"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.AudiencePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, payload, got)

		writeJSON(w, http.StatusOK, `{"id":"2384"}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := newTestGraphAdapter(t, srv.URL).CreateCustomAudience(context.Background(), "act_123", payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2384"}`, string(resp))
}

func TestCreateCustomAudience_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"server error", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"other", http.StatusServiceUnavailable, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, `{"error":{"message":"nope"}}`)
			}))
			defer srv.Close()

			_, err := newTestGraphAdapter(t, srv.URL).CreateCustomAudience(context.Background(), "act_1", models.AudiencePayload{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateCustomAudience_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestGraphAdapter(t, url).CreateCustomAudience(context.Background(), "act_1", models.AudiencePayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create custom audience request")

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestGraphAdapter_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGraphAdapter(t, srv.URL).GetAdAccount(ctx, "act_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateCustomAudience_NonJSONSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "html", body: "<html>upstream proxy ok</html>"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestGraphAdapter(t, srv.URL).CreateCustomAudience(context.Background(), "act_1", models.AudiencePayload{})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidResponseBody)
		})
	}
}

func TestGraphChecks_RequireStatusOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusAccepted, `{"data":{"is_valid":true},"id":"act_1","name":"Main"}`)
	}))
	defer srv.Close()

	a := newTestGraphAdapter(t, srv.URL)

	_, err := a.DebugToken(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusAccepted, statusErr.StatusCode)

	_, err = a.GetAdAccount(context.Background(), "act_1")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestNewAdapters_NilLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"is_valid":true},"label":"cfg"}`)
	}))
	defer srv.Close()

	graph, err := NewGraphAdapter(config.Graph{BaseURL: srv.URL, APIVersion: "v17.0", RequestTimeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, err = graph.DebugToken(context.Background())
	})
	assert.NoError(t, err)

	activation, err := NewActivationAdapter(config.Activation{Address: srv.URL, APIKey: "k", RequestTimeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, err = activation.CreateConfig(context.Background(), models.ActivationConfig{Label: "cfg"})
	})
	assert.NoError(t, err)
}
