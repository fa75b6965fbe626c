package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-coll-sync/internal/config"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/service"
	"github.com/MKhiriev/go-coll-sync/internal/store"
	"github.com/MKhiriev/go-coll-sync/internal/utils"
	"github.com/MKhiriev/go-coll-sync/internal/workers"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	cfg      *config.ClientConfig
	logger   *logger.Logger
	ids      *utils.UUIDGenerator
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		storages: storages,
		cfg:      cfg,
		logger:   logger,
		ids:      utils.NewUUIDGenerator(),
	}, nil
}

// Run performs one synchronization of all configured collections and, when a
// sync interval is configured, keeps syncing in the background until the
// process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	sessionID := a.ids.Generate()
	zl := a.logger.With().Str("session", sessionID).Logger()
	log := &logger.Logger{Logger: zl}
	ctx := zl.WithContext(context.Background())

	if err := a.syncOnce(ctx, log); err != nil {
		return err
	}

	if a.cfg.Workers.SyncInterval <= 0 {
		return nil
	}

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := workers.NewWorkers(
		workers.NewSyncWorker(jobCtx, a.services.SyncJob, a.cfg.Workers.SyncInterval),
	)
	w.Run()
	defer a.services.SyncJob.Stop()

	log.Info().
		Dur("interval", a.cfg.Workers.SyncInterval).
		Msg("watch mode: syncing periodically, press Ctrl+C to exit")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	return nil
}

func (a *App) syncOnce(ctx context.Context, log *logger.Logger) error {
	summaries, err := a.services.SyncService.SyncAll(ctx)
	if err != nil {
		return err
	}

	for _, s := range summaries {
		count, countErr := a.storages.RecordRepository.CountRecords(ctx, s.Collection)
		if countErr != nil {
			log.Err(countErr).Str("collection", s.Collection).Msg("failed to count local records")
		}

		log.Info().
			Str("collection", s.Collection).
			Bool("unchanged", s.Unchanged).
			Int("pages", s.Pages).
			Int("records", s.Records).
			Int("conflicts", s.Conflicts).
			Int64("local_records", count).
			Msg("collection synced")
	}

	return nil
}
