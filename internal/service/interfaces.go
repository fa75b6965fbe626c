// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side sync logic: the per-collection
// batching downloader, the batch applier that materialises records in the
// local store, the sync orchestrator, and the background sync job.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coll-sync/models"
)

// PageStatus reports the outcome of a single FetchNextPage call.
type PageStatus int

const (
	// PageNoData means no download pass is in progress: either none was
	// started, or the previous one already finished.
	PageNoData PageStatus = iota

	// PageContinuing means a page was fetched and applied and the server
	// reported more pages remaining. Call FetchNextPage again.
	PageContinuing

	// PageCompleted means the final page of the pass was fetched and applied
	// and the pass checkpoint was committed.
	PageCompleted

	// PageInterrupted means the server collection changed underneath the
	// pass. The continuation offset is discarded; the next FetchNextPage
	// resumes from the timestamp cursor.
	PageInterrupted
)

// String returns the status name for logging.
func (s PageStatus) String() string {
	switch s {
	case PageNoData:
		return "no_data"
	case PageContinuing:
		return "continuing"
	case PageCompleted:
		return "completed"
	case PageInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// PageResult is the outcome of a single FetchNextPage call: the status of
// the pass plus how many records the page carried.
type PageResult struct {
	Status  PageStatus
	Records int
}

// BatchApplier persists one fetched page of records.
type BatchApplier interface {
	// ApplyBatch stores the given records for the collection. The call must
	// be idempotent: the downloader can re-deliver records after an
	// interrupted pass.
	ApplyBatch(ctx context.Context, collection string, records []models.Record) error
}

// CollectionDownloader drives the incremental download of a single remote
// collection. The downloader persists its position after every page, so a
// pass survives process restarts.
type CollectionDownloader interface {
	// StartPassIfNeeded probes the server for the collection's current
	// modification time and decides whether a download pass is required.
	// Returns true if a pass was started (or was already in progress) and
	// false if the local copy is already up to date.
	StartPassIfNeeded(ctx context.Context) (bool, error)

	// FetchNextPage downloads the next page of the current pass, applies it
	// through the BatchApplier, and advances the persisted checkpoint.
	// The returned result tells the caller whether to keep going.
	FetchNextPage(ctx context.Context) (PageResult, error)

	// Reset discards the persisted checkpoint so the next pass re-downloads
	// the collection from scratch.
	Reset(ctx context.Context) error
}

// ClientSyncService synchronises the configured collections with the server.
type ClientSyncService interface {
	// SyncCollection runs a full download pass for one collection: probe,
	// then page loop, retrying interrupted passes up to the configured
	// conflict budget. Returns a summary of the pass.
	SyncCollection(ctx context.Context, collection string) (models.SyncSummary, error)

	// SyncAll runs SyncCollection for every configured collection in order
	// and returns the per-collection summaries. The first hard error stops
	// the run.
	SyncAll(ctx context.Context) ([]models.SyncSummary, error)
}

// ClientSyncJob is a background worker that periodically calls SyncAll.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
