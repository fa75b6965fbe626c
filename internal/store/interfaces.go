package store

import (
	"context"

	"github.com/MKhiriev/go-coll-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CheckpointRepository is the durable per-collection cursor store backing
// the batching downloader. Values live in a key-value table under the
// namespace "downloader.<collection>."; a missing timestamp reads as 0 and
// a missing offset reads as "". Every setter is immediately durable: when
// the call returns nil the value has been written through to the database.
type CheckpointRepository interface {
	// Load reads the full checkpoint triple for collection, substituting
	// zero values for fields that have never been written.
	Load(ctx context.Context, collection string) (models.Checkpoint, error)

	// SetBaseTimestamp persists the fallback-cursor lower bound.
	SetBaseTimestamp(ctx context.Context, collection string, ts models.Timestamp) error

	// SetLastModified persists the collection-level timestamp of the last
	// fully completed pass.
	SetLastModified(ctx context.Context, collection string, ts models.Timestamp) error

	// SetNextOffset persists the continuation token of the current pass.
	// An empty offset is a valid value meaning "no continuation".
	SetNextOffset(ctx context.Context, collection string, offset string) error

	// Reset removes all three checkpoint fields for collection. Invoked
	// only on structural changes (collection wipe, storage format bump).
	Reset(ctx context.Context, collection string) error
}

// RecordFilter narrows a ListRecords query.
type RecordFilter struct {
	// Newer, when non-zero, keeps only records with Modified > Newer.
	Newer models.Timestamp
	// Limit, when positive, caps the number of returned records.
	Limit int
}

// RecordRepository is the local materialized copy of the remote
// collections. SaveRecords is an upsert keyed by (collection, record id),
// so re-delivering a record is harmless: the newest write wins.
type RecordRepository interface {
	SaveRecords(ctx context.Context, collection string, records ...models.Record) error
	GetRecord(ctx context.Context, collection string, id string) (models.Record, error)
	ListRecords(ctx context.Context, collection string, filter RecordFilter) ([]models.Record, error)
	CountRecords(ctx context.Context, collection string) (int64, error)
	WipeCollection(ctx context.Context, collection string) error
}
