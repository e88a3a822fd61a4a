// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the audience-sync tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetSyncConfig] for the audiencesync binary and
// [GetActivationConfig] for the activationctl binary. Both build the shared
// [StructuredConfig] and validate only the sections their binary needs.
package config
