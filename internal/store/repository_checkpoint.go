package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/models"
)

// Checkpoint fields are stored as individual rows in the sync_state
// key-value table, keyed "downloader.<collection>.<field>". Missing rows
// read as zero values, so a brand-new collection starts a full fetch.
const (
	checkpointNamespace = "downloader."

	fieldBaseTimestamp = "baseTimestamp"
	fieldLastModified  = "lastModified"
	fieldNextOffset    = "nextOffset"
)

type checkpointRepository struct {
	*DB
	logger *logger.Logger
}

func NewCheckpointRepository(db *DB, logger *logger.Logger) CheckpointRepository {
	return &checkpointRepository{
		DB:     db,
		logger: logger,
	}
}

func checkpointKey(collection, field string) string {
	return checkpointNamespace + collection + "." + field
}

func (c *checkpointRepository) Load(ctx context.Context, collection string) (models.Checkpoint, error) {
	log := logger.FromContext(ctx)

	keyBase := checkpointKey(collection, fieldBaseTimestamp)
	keyLast := checkpointKey(collection, fieldLastModified)
	keyOffset := checkpointKey(collection, fieldNextOffset)

	rows, err := c.DB.QueryContext(ctx, getStates, keyBase, keyLast, keyOffset)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.Load").
			Str("collection", collection).
			Msg("failed to query checkpoint state")
		return models.Checkpoint{}, fmt.Errorf("failed to query checkpoint state (collection=%s): %w", collection, err)
	}
	defer rows.Close()

	var cp models.Checkpoint

	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "checkpointRepository.Load").
				Str("collection", collection).
				Msg("failed to scan checkpoint state row")
			return models.Checkpoint{}, fmt.Errorf("failed to scan checkpoint state row: %w", scanErr)
		}

		switch key {
		case keyBase:
			cp.BaseTimestamp = parseStoredTimestamp(value)
		case keyLast:
			cp.LastModified = parseStoredTimestamp(value)
		case keyOffset:
			cp.NextOffset = value
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "checkpointRepository.Load").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return models.Checkpoint{}, fmt.Errorf("error iterating checkpoint state rows: %w", rowsErr)
	}

	return cp, nil
}

func (c *checkpointRepository) SetBaseTimestamp(ctx context.Context, collection string, ts models.Timestamp) error {
	return c.setField(ctx, collection, fieldBaseTimestamp, strconv.FormatUint(uint64(ts), 10))
}

func (c *checkpointRepository) SetLastModified(ctx context.Context, collection string, ts models.Timestamp) error {
	return c.setField(ctx, collection, fieldLastModified, strconv.FormatUint(uint64(ts), 10))
}

func (c *checkpointRepository) SetNextOffset(ctx context.Context, collection string, offset string) error {
	return c.setField(ctx, collection, fieldNextOffset, offset)
}

func (c *checkpointRepository) Reset(ctx context.Context, collection string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteStates,
		checkpointKey(collection, fieldBaseTimestamp),
		checkpointKey(collection, fieldLastModified),
		checkpointKey(collection, fieldNextOffset),
	)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.Reset").
			Str("collection", collection).
			Msg("failed to reset checkpoint state")
		return fmt.Errorf("failed to reset checkpoint (collection=%s): %w", collection, err)
	}

	return nil
}

func (c *checkpointRepository) setField(ctx context.Context, collection, field, value string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, upsertState, checkpointKey(collection, field), value)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.setField").
			Str("collection", collection).
			Str("field", field).
			Msg("failed to upsert checkpoint field")
		return fmt.Errorf("failed to set checkpoint field %s (collection=%s): %w", field, collection, err)
	}

	return nil
}

// parseStoredTimestamp tolerates malformed stored values by treating them
// as absent: a zero cursor only causes a wider re-fetch, never a skip.
func parseStoredTimestamp(value string) models.Timestamp {
	if value == "" {
		return 0
	}

	ts, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return models.Timestamp(ts)
}
