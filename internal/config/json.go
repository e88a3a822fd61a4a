// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Unknown keys are rejected.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app"`

	Graph struct {
		BaseURL        string   `json:"base_url"`
		APIVersion     string   `json:"api_version"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"graph"`

	Destination struct {
		AccessToken  string `json:"access_token"`
		AdAccountID  string `json:"ad_account_id"`
		PayloadType  string `json:"payload_type"`
		AudienceName string `json:"audience_name"`
	} `json:"destination"`

	Activation struct {
		Address        string   `json:"address"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
		TriggerName    string   `json:"trigger"`
		CreateExample  bool     `json:"create_example"`
	} `json:"activation"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Run struct {
		RecordsFile  string `json:"records_file"`
		DryRun       bool   `json:"dry_run"`
		HistoryLimit int    `json:"history"`
	} `json:"run"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{LogLevel: jsonCfg.App.LogLevel},
		Graph: Graph{
			BaseURL:        jsonCfg.Graph.BaseURL,
			APIVersion:     jsonCfg.Graph.APIVersion,
			RequestTimeout: time.Duration(jsonCfg.Graph.RequestTimeout),
		},
		Destination: Destination{
			AccessToken:  jsonCfg.Destination.AccessToken,
			AdAccountID:  jsonCfg.Destination.AdAccountID,
			PayloadType:  jsonCfg.Destination.PayloadType,
			AudienceName: jsonCfg.Destination.AudienceName,
		},
		Activation: Activation{
			Address:        jsonCfg.Activation.Address,
			APIKey:         jsonCfg.Activation.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Activation.RequestTimeout),
			TriggerName:    jsonCfg.Activation.TriggerName,
			CreateExample:  jsonCfg.Activation.CreateExample,
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Run: Run{
			RecordsFile:  jsonCfg.Run.RecordsFile,
			DryRun:       jsonCfg.Run.DryRun,
			HistoryLimit: jsonCfg.Run.HistoryLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
