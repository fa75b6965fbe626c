// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_CreatesSyncSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	// схема на месте: вставки в обе таблицы проходят
	if _, err = db.Exec(`INSERT INTO sync_state (key, value) VALUES ('downloader.bookmarks.lastModified', '300')`); err != nil {
		t.Errorf("sync_state insert failed: %v", err)
	}
	if _, err = db.Exec(`INSERT INTO records (collection, record_id, modified, payload) VALUES ('bookmarks', 'rec-1', 100, x'7b7d')`); err != nil {
		t.Errorf("records insert failed: %v", err)
	}

	// повторная миграция идемпотентна
	if err = Migrate(db); err != nil {
		t.Errorf("re-running migration failed: %v", err)
	}
}
