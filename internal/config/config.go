// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-coll-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the outbound sync transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the collection list and batching parameters for the
	// downloader.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps
// both the materialized record copy and the sync checkpoints.
type DB struct {
	// DSN is the SQLite file path / connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound HTTP transport used to talk
// to the sync server.
type Adapter struct {
	// ServerAddress is the base URL of the sync server
	// (e.g. "https://sync.example.org").
	// Env: ADAPTER_ADDRESS
	ServerAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token attached to every storage request.
	// Token acquisition (login, signing) is outside this application;
	// the value is treated as opaque.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Sync holds the downloader parameters.
type Sync struct {
	// Collections is the list of collection names to synchronize.
	// Env: SYNC_COLLECTIONS (comma-separated)
	Collections []string `env:"COLLECTIONS" envSeparator:","`

	// BatchLimit is the maximum number of records requested per page.
	// Env: SYNC_BATCH_LIMIT
	BatchLimit int `env:"BATCH_LIMIT"`

	// ConflictRetries is how many times a pass is restarted after the
	// server invalidates a continuation token before the pass is given
	// up for this run.
	// Env: SYNC_CONFLICT_RETRIES
	ConflictRetries int `env:"CONFLICT_RETRIES"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	// Zero disables the background job (single-shot mode).
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
