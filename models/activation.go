// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Ref is a JSON reference into another section of an activation config,
// e.g. "#/sources/example_bigquery_table".
type Ref struct {
	Ref string `json:"$ref"`
}

// SourceRef builds a [Ref] pointing at a named source.
func SourceRef(name string) Ref { return Ref{Ref: "#/sources/" + name} }

// DestinationRef builds a [Ref] pointing at a named destination.
func DestinationRef(name string) Ref { return Ref{Ref: "#/destinations/" + name} }

// Activation links a source to a destination on a schedule.
type Activation struct {
	Name        string `json:"name"`
	Source      Ref    `json:"source"`
	Destination Ref    `json:"destination"`
	Schedule    string `json:"schedule,omitempty"`
}

// BigQuerySource is the BIGQUERY source block of an activation config.
type BigQuerySource struct {
	Type    string `json:"type"`
	Dataset string `json:"dataset"`
	Table   string `json:"table"`
}

// MetaDestination is the META_MARKETING destination block of an activation
// config.
type MetaDestination struct {
	Type string `json:"type"`
	DestinationSettings
}

// ActivationConfigValue is the body of an activation config. Sources and
// destinations are kept as raw JSON since each connector type has its own
// shape.
type ActivationConfigValue struct {
	ExternalConnections []json.RawMessage          `json:"external_connections"`
	Sources             map[string]json.RawMessage `json:"sources"`
	Destinations        map[string]json.RawMessage `json:"destinations"`
	Activations         []Activation               `json:"activations"`
	Secrets             map[string]json.RawMessage `json:"secrets"`
}

// ActivationConfig is a labelled config version of the activation service.
type ActivationConfig struct {
	Label string                `json:"label"`
	Value ActivationConfigValue `json:"value"`
}

// TriggerRequest is the body of an activation trigger call. DryRun is 1 for
// a dry run and 0 otherwise.
type TriggerRequest struct {
	DryRun int `json:"dry_run"`
}

// NewTriggerRequest converts the dryRun flag into its wire form.
func NewTriggerRequest(dryRun bool) TriggerRequest {
	if dryRun {
		return TriggerRequest{DryRun: 1}
	}
	return TriggerRequest{DryRun: 0}
}

// ConnectionStatus is the outcome of the activation service connectivity
// probe.
type ConnectionStatus struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Names used by the example BigQuery to Meta Marketing config.
const (
	ExampleConfigLabel      = "Example BQ to Meta Marketing"
	ExampleSourceName       = "example_bigquery_table"
	ExampleDestinationName  = "example_meta_marketing"
	ExampleActivationName   = "example_bq_to_meta_marketing"
	ExampleBigQueryDataset  = "bq_dataset_example_name"
	ExampleBigQueryTable    = "bq_table_example_name"
	ExampleActivationPeriod = "@weekly"

	BigQuerySourceType = "BIGQUERY"
)
