// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is kept portable between Postgres and sqlite: no database
// defaults, timestamps always supplied by the application in UTC.
// Note there is deliberately NO unique index on (survey_id, wallet_address);
// repeat votes from one wallet are accepted at the storage layer.
const schema = `
-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    active BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_survey_active ON survey(active);
CREATE INDEX IF NOT EXISTS idx_survey_created_at ON survey(created_at);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    wallet_address TEXT NOT NULL,
    vote_option TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_survey_id ON vote(survey_id);
CREATE INDEX IF NOT EXISTS idx_vote_created_at ON vote(created_at);
`
