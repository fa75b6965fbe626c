// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"record_id", "modified", "payload"}

func TestRecordRepository_SaveRecords_UpsertsEachRecord(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).
		WithArgs("bookmarks", "rec-1", int64(100), []byte(`{"title":"a"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).
		WithArgs("bookmarks", "rec-2", int64(200), []byte(`{"title":"b"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveRecords(testContext(), "bookmarks",
		models.Record{ID: "rec-1", Modified: 100, Payload: []byte(`{"title":"a"}`)},
		models.Record{ID: "rec-2", Modified: 200, Payload: []byte(`{"title":"b"}`)},
	)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_SaveRecords_StopsOnFirstError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).
		WillReturnError(errors.New("database is locked"))

	err := repo.SaveRecords(testContext(), "bookmarks",
		models.Record{ID: "rec-1", Modified: 100, Payload: []byte(`{}`)},
		models.Record{ID: "rec-2", Modified: 200, Payload: []byte(`{}`)},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rec-1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_GetRecord_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, modified, payload")).
		WithArgs("bookmarks", "rec-1").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("rec-1", int64(150), []byte(`{"title":"a"}`)))

	record, err := repo.GetRecord(testContext(), "bookmarks", "rec-1")

	require.NoError(t, err)
	assert.Equal(t, "rec-1", record.ID)
	assert.Equal(t, models.Timestamp(150), record.Modified)
	assert.JSONEq(t, `{"title":"a"}`, string(record.Payload))
}

func TestRecordRepository_GetRecord_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, modified, payload")).
		WithArgs("bookmarks", "missing").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.GetRecord(testContext(), "bookmarks", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordRepository_ListRecords_NoFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY modified DESC")).
		WithArgs("bookmarks").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("rec-2", int64(200), []byte(`{}`)).
			AddRow("rec-1", int64(100), []byte(`{}`)))

	records, err := repo.ListRecords(testContext(), "bookmarks", RecordFilter{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-2", records[0].ID)
	assert.Equal(t, "rec-1", records[1].ID)
}

func TestRecordRepository_ListRecords_NewerAndLimit(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	// фильтр по modified добавляет второй аргумент запроса
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 1")).
		WithArgs("bookmarks", int64(100)).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("rec-2", int64(200), []byte(`{}`)))

	records, err := repo.ListRecords(testContext(), "bookmarks", RecordFilter{Newer: 100, Limit: 1})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Timestamp(200), records[0].Modified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CountRecords(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("bookmarks").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountRecords(testContext(), "bookmarks")

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestRecordRepository_WipeCollection(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records")).
		WithArgs("bookmarks").
		WillReturnResult(sqlmock.NewResult(0, 42))

	require.NoError(t, repo.WipeCollection(testContext(), "bookmarks"))
	require.NoError(t, mock.ExpectationsWereMet())
}
