// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (environment first, then flags,
// then the JSON file) using a builder; the resulting [StructuredConfig] is
// projected into the runtime-specific [ClientConfig] view and validated
// before use.
package config
