package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) SaveRecords(ctx context.Context, collection string, records ...models.Record) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.DB.ExecContext(ctx, saveSingleRecord,
			collection,
			record.ID,
			uint64(record.Modified),
			[]byte(record.Payload),
		)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.SaveRecords").
				Str("collection", collection).
				Str("record_id", record.ID).
				Msg("failed to execute upsert for record")
			return fmt.Errorf("failed to save record (collection=%s, id=%s): %w", collection, record.ID, err)
		}
	}

	return nil
}

func (r *recordRepository) GetRecord(ctx context.Context, collection string, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	var record models.Record
	var modified uint64
	var payload []byte

	row := r.DB.QueryRowContext(ctx, getSingleRecord, collection, id)
	if err := row.Scan(&record.ID, &modified, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, fmt.Errorf("%w (collection=%s, id=%s)", ErrRecordNotFound, collection, id)
		}
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("collection", collection).
			Str("record_id", id).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("failed to scan record row: %w", err)
	}

	record.Modified = models.Timestamp(modified)
	record.Payload = payload

	return record, nil
}

func (r *recordRepository) ListRecords(ctx context.Context, collection string, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("record_id", "modified", "payload").
		From("records").
		Where(sq.Eq{"collection": collection}).
		OrderBy("modified DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Newer > 0 {
		builder = builder.Where(sq.Gt{"modified": uint64(filter.Newer)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list records query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("collection", collection).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record

	for rows.Next() {
		var record models.Record
		var modified uint64
		var payload []byte

		if scanErr := rows.Scan(&record.ID, &modified, &payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.ListRecords").
				Str("collection", collection).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("failed to scan record row: %w", scanErr)
		}

		record.Modified = models.Timestamp(modified)
		record.Payload = payload
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.ListRecords").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record rows: %w", rowsErr)
	}

	return records, nil
}

func (r *recordRepository) CountRecords(ctx context.Context, collection string) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countRecords, collection)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "recordRepository.CountRecords").
			Str("collection", collection).
			Msg("failed to scan record count")
		return 0, fmt.Errorf("failed to count records (collection=%s): %w", collection, err)
	}

	return count, nil
}

func (r *recordRepository) WipeCollection(ctx context.Context, collection string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, wipeCollection, collection)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.WipeCollection").
			Str("collection", collection).
			Msg("failed to wipe collection records")
		return fmt.Errorf("failed to wipe collection %s: %w", collection, err)
	}

	return nil
}
