// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-coll-sync/internal/adapter"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/store"
	"github.com/MKhiriev/go-coll-sync/models"
)

type collectionDownloader struct {
	collection  string
	limit       int
	client      adapter.CollectionClient
	checkpoints store.CheckpointRepository
	applier     BatchApplier
	logger      *logger.Logger

	mu           sync.Mutex
	passActive   bool
	passModified models.Timestamp
}

// NewCollectionDownloader creates a downloader for one collection. limit caps
// the page size requested from the server; zero or negative means the server
// default.
func NewCollectionDownloader(
	collection string,
	limit int,
	client adapter.CollectionClient,
	checkpoints store.CheckpointRepository,
	applier BatchApplier,
	logger *logger.Logger,
) CollectionDownloader {
	return &collectionDownloader{
		collection:  collection,
		limit:       limit,
		client:      client,
		checkpoints: checkpoints,
		applier:     applier,
		logger:      logger,
	}
}

func (d *collectionDownloader) StartPassIfNeeded(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	info, err := d.client.GetCollectionInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("get collection info: %w", err)
	}

	// A collection missing from the server map has no reported state at all:
	// nothing to compare against, nothing to download.
	serverModified, ok := info[d.collection]
	if !ok {
		log.Debug().
			Str("func", "collectionDownloader.StartPassIfNeeded").
			Str("collection", d.collection).
			Msg("collection not reported by server, skipping pass")

		d.mu.Lock()
		d.passActive = false
		d.mu.Unlock()
		return false, nil
	}

	cp, err := d.checkpoints.Load(ctx, d.collection)
	if err != nil {
		return false, fmt.Errorf("load checkpoint: %w", err)
	}

	// Unchanged collection and no half-finished pass: nothing to download.
	if serverModified == cp.LastModified && cp.NextOffset == "" {
		log.Debug().
			Str("func", "collectionDownloader.StartPassIfNeeded").
			Str("collection", d.collection).
			Uint64("modified", uint64(serverModified)).
			Msg("collection unchanged, skipping pass")

		d.mu.Lock()
		d.passActive = false
		d.mu.Unlock()
		return false, nil
	}

	d.mu.Lock()
	d.passActive = true
	d.passModified = serverModified
	d.mu.Unlock()

	log.Info().
		Str("func", "collectionDownloader.StartPassIfNeeded").
		Str("collection", d.collection).
		Uint64("server_modified", uint64(serverModified)).
		Uint64("last_modified", uint64(cp.LastModified)).
		Str("next_offset", cp.NextOffset).
		Msg("download pass started")

	return true, nil
}

func (d *collectionDownloader) FetchNextPage(ctx context.Context) (PageResult, error) {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	active := d.passActive
	passModified := d.passModified
	d.mu.Unlock()

	if !active {
		return PageResult{Status: PageNoData}, ErrPassNotStarted
	}

	cp, err := d.checkpoints.Load(ctx, d.collection)
	if err != nil {
		return PageResult{Status: PageNoData}, fmt.Errorf("load checkpoint: %w", err)
	}

	req := models.FetchRequest{
		Collection: d.collection,
		Newer:      cp.BaseTimestamp,
		Limit:      d.limit,
		Offset:     cp.NextOffset,
	}
	// The precondition guard only makes sense while continuing an offset
	// chain: a fresh fetch from the timestamp cursor cannot be invalidated.
	if cp.NextOffset != "" {
		req.UnmodifiedSince = passModified
	}

	resp, err := d.client.FetchBatch(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrPreconditionFailed) {
			return d.interruptPass(ctx)
		}
		return PageResult{Status: PageNoData}, fmt.Errorf("fetch batch: %w", err)
	}

	// Persist the continuation offset before applying: if apply dies halfway,
	// the restarted pass re-fetches this page instead of skipping it.
	if err = d.checkpoints.SetNextOffset(ctx, d.collection, resp.NextOffset); err != nil {
		return PageResult{Status: PageNoData}, fmt.Errorf("persist next offset: %w", err)
	}

	// Pages arrive newest-first, so the last record is the oldest one seen.
	// Backing the cursor up to just before it keeps the fallback window
	// covering everything not yet applied; re-fetching the boundary record
	// is harmless because applies are idempotent.
	if len(resp.Records) > 0 {
		oldest := resp.Records[len(resp.Records)-1].Modified
		if oldest > 0 {
			oldest--
		}
		if err = d.checkpoints.SetBaseTimestamp(ctx, d.collection, oldest); err != nil {
			return PageResult{Status: PageNoData}, fmt.Errorf("persist base timestamp: %w", err)
		}
	}

	if err = d.applier.ApplyBatch(ctx, d.collection, resp.Records); err != nil {
		return PageResult{Status: PageNoData}, fmt.Errorf("apply batch: %w", err)
	}

	if resp.LastModified > 0 {
		d.mu.Lock()
		d.passModified = resp.LastModified
		passModified = resp.LastModified
		d.mu.Unlock()
	}

	if resp.NextOffset != "" {
		log.Debug().
			Str("func", "collectionDownloader.FetchNextPage").
			Str("collection", d.collection).
			Int("records", len(resp.Records)).
			Str("next_offset", resp.NextOffset).
			Msg("page applied, more pages remain")
		return PageResult{Status: PageContinuing, Records: len(resp.Records)}, nil
	}

	// Final page: the local copy now reflects the server snapshot, so the
	// high-water mark can be committed.
	if err = d.checkpoints.SetLastModified(ctx, d.collection, passModified); err != nil {
		return PageResult{Status: PageNoData}, fmt.Errorf("commit last modified: %w", err)
	}

	d.mu.Lock()
	d.passActive = false
	d.mu.Unlock()

	log.Info().
		Str("func", "collectionDownloader.FetchNextPage").
		Str("collection", d.collection).
		Int("records", len(resp.Records)).
		Uint64("last_modified", uint64(passModified)).
		Msg("download pass completed")

	return PageResult{Status: PageCompleted, Records: len(resp.Records)}, nil
}

// interruptPass handles a precondition failure mid-chain: the server
// collection changed, so the continuation offset is stale. Only the offset is
// discarded; base_timestamp keeps the fallback window so no record is lost.
func (d *collectionDownloader) interruptPass(ctx context.Context) (PageResult, error) {
	log := logger.FromContext(ctx)

	if err := d.checkpoints.SetNextOffset(ctx, d.collection, ""); err != nil {
		return PageResult{Status: PageNoData}, fmt.Errorf("clear next offset after conflict: %w", err)
	}

	d.mu.Lock()
	d.passActive = false
	d.mu.Unlock()

	log.Warn().
		Str("func", "collectionDownloader.interruptPass").
		Str("collection", d.collection).
		Msg("collection changed mid-pass, continuation offset discarded")

	return PageResult{Status: PageInterrupted}, nil
}

func (d *collectionDownloader) Reset(ctx context.Context) error {
	if err := d.checkpoints.Reset(ctx, d.collection); err != nil {
		return fmt.Errorf("reset checkpoint: %w", err)
	}

	d.mu.Lock()
	d.passActive = false
	d.passModified = 0
	d.mu.Unlock()

	return nil
}
