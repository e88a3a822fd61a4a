// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked by the binary views.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Graph holds the Meta Graph API endpoint settings.
	Graph Graph `envPrefix:"GRAPH_"`

	// Destination holds the custom audience destination credentials.
	Destination Destination `envPrefix:"META_"`

	// Activation holds the local activation service address and key.
	Activation Activation `envPrefix:"TIGHTLOCK_"`

	// Storage holds the run history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Run holds per-invocation options of the audiencesync binary.
	Run Run `envPrefix:"RUN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment variables are
	// parsed. Defaults to ".env"; a missing file is ignored.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Graph holds settings for the Meta Graph API.
type Graph struct {
	// BaseURL is the Graph API host, without the version segment.
	// Env: GRAPH_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"required,url"`

	// APIVersion is the Graph API version path segment (e.g. "v17.0").
	// Env: GRAPH_API_VERSION
	APIVersion string `env:"API_VERSION" validate:"required,startswith=v"`

	// RequestTimeout bounds every Graph API request.
	// Env: GRAPH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Destination holds the custom audience destination settings.
type Destination struct {
	// AccessToken is the Graph API access token. Secret.
	// Env: META_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN" validate:"required"`

	// AdAccountID is the ad account, with or without the "act_" prefix.
	// Env: META_AD_ACCOUNT_ID
	AdAccountID string `env:"AD_ACCOUNT_ID" validate:"required"`

	// PayloadType is CREATE_USER or UPDATE_USER.
	// Env: META_PAYLOAD_TYPE
	PayloadType string `env:"PAYLOAD_TYPE" validate:"omitempty,oneof=CREATE_USER UPDATE_USER"`

	// AudienceName is the name of the custom audience.
	// Env: META_AUDIENCE_NAME
	AudienceName string `env:"AUDIENCE_NAME"`
}

// Activation holds settings for the local activation service.
type Activation struct {
	// Address is the service host[:port]; "/api/v1" is appended.
	// Env: TIGHTLOCK_IP
	Address string `env:"IP" validate:"required"`

	// APIKey is sent in the X-API-Key header. Secret.
	// Env: TIGHTLOCK_API_KEY
	APIKey string `env:"API_KEY" validate:"required"`

	// RequestTimeout bounds every activation service request.
	// Env: TIGHTLOCK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// TriggerName is the activation to trigger.
	// Env: TIGHTLOCK_TRIGGER
	TriggerName string `env:"TRIGGER"`

	// CreateExample makes activationctl submit the example config first.
	// Env: TIGHTLOCK_CREATE_EXAMPLE
	CreateExample bool `env:"CREATE_EXAMPLE"`
}

// Storage groups the configuration for the run history backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the run history database.
type DB struct {
	// DSN is either a PostgreSQL URL (postgres://...) or a SQLite file path.
	// Empty disables run history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Run holds per-invocation options of the audiencesync binary.
type Run struct {
	// RecordsFile is a JSON array or CSV file of user records.
	// Env: RUN_RECORDS_FILE
	RecordsFile string `env:"RECORDS_FILE" validate:"required_if=HistoryLimit 0"`

	// DryRun builds the payload without submitting it.
	// Env: RUN_DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// HistoryLimit, when positive, prints that many recent runs and exits.
	// Env: RUN_HISTORY
	HistoryLimit int `env:"HISTORY" validate:"gte=0"`
}

// Defaults applied before any other source.
const (
	DefaultLogLevel       = "info"
	DefaultGraphBaseURL   = "https://graph.facebook.com"
	DefaultGraphVersion   = "v17.0"
	DefaultRequestTimeout = 30 * time.Second
	DefaultEnvFile        = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Graph: Graph{
			BaseURL:        DefaultGraphBaseURL,
			APIVersion:     DefaultGraphVersion,
			RequestTimeout: DefaultRequestTimeout,
		},
		Activation:  Activation{RequestTimeout: DefaultRequestTimeout},
		EnvFilePath: DefaultEnvFile,
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (see package documentation for the order). args are the
// command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
