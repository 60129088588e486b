// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override defaults:

	go run main.go -p 8080 -d "postgres://..." -t postgres

Environment equivalents: PORT, DATABASE_URL, DATABASE_TYPE,
SINGLE_VOTE_PER_WALLET.

# Settings

Required:

  - DATABASE_URL (-d): connection string (sqlite path or postgres URL)

Optional:

  - PORT (-p): server port (default: 3321)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SINGLE_VOTE_PER_WALLET (-single-vote): reject repeat votes from one
    wallet on the same survey (default: false, matching the historical
    open-poll behavior)
*/
package cliparse
