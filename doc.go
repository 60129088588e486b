// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Weekly Pulse API server.

Weekly Pulse runs a single rotating public poll: one survey is live at a
time, wallets cast one yes/no vote each, and surveys retire automatically
seven days after creation. Results aggregate into percentages and a
paginated vote log.

# Starting the Server

The server reads configuration from environment variables (a local .env
is honored) or CLI flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 3321 -d pulse.db

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or Postgres connection string

Optional settings:

  - PORT (-p): server port (default: 3321)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SINGLE_VOTE_PER_WALLET (-single-vote): reject repeat wallet votes

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (surveys, votes)
  - router: chi routes and middleware stack
  - middleware: JSON helpers, CORS
  - models: domain and request/response types
  - db: store gateway (interface + SQL implementation, schema)
  - survey: lifecycle manager (active survey, 7-day expiration, creation)
  - tally: vote aggregation engine
  - voting: vote casting and wallet policy
  - pagination: page window math
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
