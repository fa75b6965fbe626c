// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FetchRequest describes a single paginated GET against one collection.
type FetchRequest struct {
	// Collection is the name of the collection to fetch from.
	Collection string

	// Newer is the exclusive lower bound on record modification time:
	// only records with Modified > Newer are returned. Zero fetches
	// everything.
	Newer Timestamp

	// Limit is the maximum number of records per page. Must be positive.
	Limit int

	// Offset is the opaque continuation token from the previous page.
	// Empty starts a fresh listing.
	Offset string

	// UnmodifiedSince, when non-zero, asks the server to fail the request
	// with a precondition error if the collection has been modified after
	// this timestamp. The downloader sets it on continuation requests so
	// that a stale offset is detected instead of silently misused.
	UnmodifiedSince Timestamp
}
