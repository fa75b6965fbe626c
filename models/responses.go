// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BatchResponse is one decoded page of a paginated collection fetch.
type BatchResponse struct {
	// Records is the page content, sorted by Modified descending
	// (newest first) as requested by the downloader.
	Records []Record

	// NextOffset is the server's opaque continuation token for the next
	// page. Empty means the listing is exhausted and the pass is complete.
	NextOffset string

	// LastModified is the collection-level modification timestamp the
	// server reported alongside this page.
	LastModified Timestamp

	// Status is the HTTP status code of the underlying response.
	Status int
}
