// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertState = `
		INSERT INTO sync_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	getStates = `
		SELECT key, value
		FROM sync_state
		WHERE key IN ($1, $2, $3);`

	deleteStates = `
		DELETE FROM sync_state
		WHERE key IN ($1, $2, $3);`

	saveSingleRecord = `
		INSERT INTO records (
			collection,
			record_id,
			modified,
			payload
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT(collection, record_id) DO UPDATE SET
			modified = excluded.modified,
			payload  = excluded.payload;`

	getSingleRecord = `
		SELECT
			record_id,
			modified,
			payload
		FROM records
		WHERE collection = $1 AND record_id = $2;`

	countRecords = `
		SELECT COUNT(*)
		FROM records
		WHERE collection = $1;`

	wipeCollection = `
		DELETE FROM records
		WHERE collection = $1;`
)
