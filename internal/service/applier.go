package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coll-sync/internal/store"
	"github.com/MKhiriev/go-coll-sync/models"
)

type recordApplier struct {
	records store.RecordRepository
}

// NewRecordApplier returns a BatchApplier that upserts fetched records into
// the local record repository. Upserts key on (collection, record_id), so
// re-applying a page after an interrupted pass is safe.
func NewRecordApplier(records store.RecordRepository) BatchApplier {
	return &recordApplier{records: records}
}

func (a *recordApplier) ApplyBatch(ctx context.Context, collection string, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	if err := a.records.SaveRecords(ctx, collection, records...); err != nil {
		return fmt.Errorf("save fetched records: %w", err)
	}

	return nil
}
