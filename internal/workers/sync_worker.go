// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coll-sync/internal/service"
)

type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker wraps the periodic sync job as a Worker. Run launches the
// job's background goroutine and returns immediately; the job keeps syncing
// until ctx is cancelled.
func NewSyncWorker(ctx context.Context, job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncWorker{
		ctx:      ctx,
		job:      job,
		interval: interval,
	}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
