// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the store gateway for surveys and votes.

# Store Interface

All persistence goes through the Store interface. Production code uses
SQLStore over database/sql; tests inject the same SQLStore backed by an
in-memory sqlite database (see testutil).

	store := db.NewSQLStore(conn)
	survey, err := store.ActiveSurvey(ctx)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - survey: Poll question, active flag, creation time
  - vote: Wallet address and yes/no choice per survey

	survey 1──* vote

There is no unique constraint on (survey_id, wallet_address): one wallet
may insert any number of votes for the same survey. Repeat-vote handling
is an application-level policy, not a schema guarantee.

# Indexes

  - survey.active
  - survey.created_at
  - vote.survey_id
  - vote.created_at

# Drivers

The schema and every query stay inside the subset shared by lib/pq
(Postgres) and modernc.org/sqlite: $n placeholders, no database-side
defaults, timestamps supplied by the application.
*/
package db
