// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Timestamp is a server-assigned modification time expressed as
// milliseconds since the Unix epoch. Timestamps are comparable and
// monotonic per record, but not globally unique: many records may share
// one value, which is why the downloader biases its fallback cursor one
// millisecond below the oldest record it has seen.
type Timestamp uint64

// Record is a single collection entry as returned by the server.
// The payload is opaque to the sync engine: it is carried, stored, and
// handed to the applier without inspection. Only the envelope fields
// (ID, Modified) participate in sync decisions.
type Record struct {
	// ID is the stable server-side identifier of the record within its
	// collection. Re-delivered records overwrite by ID (last write wins).
	ID string `json:"id"`

	// Modified is the server-assigned modification timestamp of this
	// record, in milliseconds.
	Modified Timestamp `json:"modified"`

	// Payload is the raw record body. It may be encrypted or otherwise
	// encoded; decoding is the consumer's concern, not the engine's.
	Payload json.RawMessage `json:"payload"`
}
