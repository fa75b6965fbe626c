// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client application runtime.
//
// It wires the collection client, local storage, sync services, and the
// background sync job into a single process lifecycle.
package client
