package service

import (
	"github.com/MKhiriev/go-coll-sync/internal/adapter"
	"github.com/MKhiriev/go-coll-sync/internal/config"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/store"
)

type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, client adapter.CollectionClient, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	applier := NewRecordApplier(storages.RecordRepository)

	syncSvc := NewClientSyncService(
		cfg.Collections,
		cfg.ConflictRetries,
		func(collection string) CollectionDownloader {
			return NewCollectionDownloader(collection, cfg.BatchLimit, client, storages.CheckpointRepository, applier, logger)
		},
		logger,
	)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, logger),
	}
}
