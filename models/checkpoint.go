// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Checkpoint is the durable per-collection cursor triple that makes a
// multi-page download pass resumable across process restarts.
//
// Lifecycle: all fields start at their zero values for a new collection.
// NextOffset and BaseTimestamp advance after every successful page fetch;
// LastModified is committed once, when a pass drains the final page. A
// detected server conflict clears NextOffset only. A structural reset
// (collection wipe, storage format bump) clears all three.
type Checkpoint struct {
	// BaseTimestamp is the exclusive lower bound for the timestamp-ordered
	// fallback cursor: the next fetch asks for records modified strictly
	// after this value. It always points one millisecond before the oldest
	// record already seen, so a fallback re-fetches a tied group rather
	// than risk skipping part of it.
	BaseTimestamp Timestamp

	// LastModified is the collection-level modification timestamp as of
	// the last fully completed pass. Used only to short-circuit a pass
	// when the server reports no change.
	LastModified Timestamp

	// NextOffset is the opaque continuation token returned by the most
	// recent successful fetch of the current pass. Empty means no pass is
	// in progress (or one just completed). It is never reused across a
	// detected conflict.
	NextOffset string
}
