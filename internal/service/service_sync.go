// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/models"
)

type clientSyncService struct {
	downloaders     map[string]CollectionDownloader
	collections     []string
	conflictRetries int
	logger          *logger.Logger
}

// NewClientSyncService wires one downloader per configured collection.
// conflictRetries bounds how many times a pass interrupted by server-side
// changes is restarted before SyncCollection gives up.
func NewClientSyncService(
	collections []string,
	conflictRetries int,
	newDownloader func(collection string) CollectionDownloader,
	logger *logger.Logger,
) ClientSyncService {
	downloaders := make(map[string]CollectionDownloader, len(collections))
	for _, collection := range collections {
		downloaders[collection] = newDownloader(collection)
	}

	return &clientSyncService{
		downloaders:     downloaders,
		collections:     collections,
		conflictRetries: conflictRetries,
		logger:          logger,
	}
}

func (s *clientSyncService) SyncCollection(ctx context.Context, collection string) (models.SyncSummary, error) {
	log := logger.FromContext(ctx)

	downloader, ok := s.downloaders[collection]
	if !ok {
		return models.SyncSummary{}, fmt.Errorf("collection %q is not configured for sync", collection)
	}

	summary := models.SyncSummary{Collection: collection}

	for attempt := 0; ; attempt++ {
		started, err := downloader.StartPassIfNeeded(ctx)
		if err != nil {
			return summary, fmt.Errorf("start pass for %s: %w", collection, err)
		}
		if !started {
			summary.Unchanged = summary.Pages == 0
			return summary, nil
		}

		interrupted, err := s.runPass(ctx, downloader, &summary)
		if err != nil {
			return summary, fmt.Errorf("sync %s: %w", collection, err)
		}
		if !interrupted {
			return summary, nil
		}

		summary.Conflicts++
		if attempt+1 >= s.conflictRetries {
			log.Warn().
				Str("func", "clientSyncService.SyncCollection").
				Str("collection", collection).
				Int("conflicts", summary.Conflicts).
				Msg("giving up after repeated mid-pass conflicts")
			return summary, fmt.Errorf("sync %s: %w", collection, ErrConflictBudgetExhausted)
		}

		log.Info().
			Str("func", "clientSyncService.SyncCollection").
			Str("collection", collection).
			Int("attempt", attempt+1).
			Msg("pass interrupted, restarting from timestamp cursor")
	}
}

// runPass drains the page loop of one started pass. Returns true if the pass
// was interrupted by a server-side change and should be restarted.
func (s *clientSyncService) runPass(ctx context.Context, downloader CollectionDownloader, summary *models.SyncSummary) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		result, err := downloader.FetchNextPage(ctx)
		if err != nil {
			return false, err
		}

		switch result.Status {
		case PageContinuing:
			summary.Pages++
			summary.Records += result.Records
		case PageCompleted:
			summary.Pages++
			summary.Records += result.Records
			return false, nil
		case PageInterrupted:
			return true, nil
		case PageNoData:
			return false, nil
		}
	}
}

func (s *clientSyncService) SyncAll(ctx context.Context) ([]models.SyncSummary, error) {
	summaries := make([]models.SyncSummary, 0, len(s.collections))

	for _, collection := range s.collections {
		summary, err := s.SyncCollection(ctx, collection)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
