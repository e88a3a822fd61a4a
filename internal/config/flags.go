// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-graph-url Graph API base URL
//	-graph-version Graph API version (e.g. "v17.0")
//	-graph-timeout Graph API request timeout (e.g. "30s")
//	-access-token Graph API access token
//	-ad-account ad account ID
//	-payload-type CREATE_USER or UPDATE_USER
//	-audience-name custom audience name
//	-a activation service address in format [host]:[port]
//	-api-key activation service API key
//	-tightlock-timeout activation service request timeout
//	-trigger activation name to trigger
//	-create-example submit the example activation config
//	-d run history database DSN
//	-records user records file (JSON or CSV)
//	-dry-run build the payload without submitting it
//	-history print the last N runs and exit
func parseFlags(args []string) (*StructuredConfig, error) {
	var activationAddress NetAddress
	var jsonConfigPath, logLevel string
	var graphURL, graphVersion string
	var graphTimeout, activationTimeout time.Duration
	var accessToken, adAccount, payloadType, audienceName string
	var apiKey, triggerName string
	var createExample bool
	var databaseDSN, recordsFile string
	var dryRun bool
	var history int

	fs := flag.NewFlagSet("audience-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&graphURL, "graph-url", "", "Graph API base URL")
	fs.StringVar(&graphVersion, "graph-version", "", "Graph API version (e.g., v17.0)")
	fs.DurationVar(&graphTimeout, "graph-timeout", 0, "Graph API request timeout (e.g., 30s)")
	fs.StringVar(&accessToken, "access-token", "", "Graph API access token")
	fs.StringVar(&adAccount, "ad-account", "", "Ad account ID")
	fs.StringVar(&payloadType, "payload-type", "", "Payload type (CREATE_USER or UPDATE_USER)")
	fs.StringVar(&audienceName, "audience-name", "", "Custom audience name")
	fs.Var(&activationAddress, "a", "Activation service address host:port")
	fs.StringVar(&apiKey, "api-key", "", "Activation service API key")
	fs.DurationVar(&activationTimeout, "tightlock-timeout", 0, "Activation service request timeout (e.g., 30s)")
	fs.StringVar(&triggerName, "trigger", "", "Activation name to trigger")
	fs.BoolVar(&createExample, "create-example", false, "Submit the example activation config")
	fs.StringVar(&databaseDSN, "d", "", "Run history database DSN")
	fs.StringVar(&recordsFile, "records", "", "User records file (JSON or CSV)")
	fs.BoolVar(&dryRun, "dry-run", false, "Build the payload without submitting it")
	fs.IntVar(&history, "history", 0, "Print the last N runs and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Graph: Graph{
			BaseURL:        graphURL,
			APIVersion:     graphVersion,
			RequestTimeout: graphTimeout,
		},
		Destination: Destination{
			AccessToken:  accessToken,
			AdAccountID:  adAccount,
			PayloadType:  payloadType,
			AudienceName: audienceName,
		},
		Activation: Activation{
			Address:        activationAddress.String(),
			APIKey:         apiKey,
			RequestTimeout: activationTimeout,
			TriggerName:    triggerName,
			CreateExample:  createExample,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Run: Run{
			RecordsFile:  recordsFile,
			DryRun:       dryRun,
			HistoryLimit: history,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
