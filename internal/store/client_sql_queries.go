// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package store

const (
	createHistoryCacheSchema = `
		CREATE TABLE IF NOT EXISTS history_cache (
			message_id TEXT PRIMARY KEY,
			email      TEXT NOT NULL,
			prompt     TEXT NOT NULL,
			response   TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_cache_email
			ON history_cache (email, created_at);`

	saveCachedMessage = `
		INSERT OR REPLACE INTO history_cache (
			message_id,
			email,
			prompt,
			response,
			created_at
		) VALUES ($1, $2, $3, $4, $5);`

	getCachedMessages = `
		SELECT
			message_id,
			prompt,
			response,
			created_at
		FROM history_cache
		WHERE email = $1
		ORDER BY created_at ASC;`

	clearCachedMessages = `
		DELETE FROM history_cache
		WHERE email = $1;`
)
