// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Weekly Pulse API.

# Route Registration

NewRouter creates a configured chi router with all endpoints:

	r := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Survey rotation:

	GET  /api/active-survey   - Live survey with tally (expires stale first)
	GET  /api/surveys/history - Last 100 closed surveys with stats
	GET  /api/polls           - All surveys, newest first
	POST /api/polls           - Create a survey

Voting:

	POST /api/vote      - Cast a yes/no vote
	GET  /api/votes/log - Paginated vote log (?page=N)

# Middleware

chi's RequestID, RealIP, Logger, and Recoverer run on every request,
followed by CORS. Unknown routes return 404 and wrong verbs 405, both
as {"error": message} JSON.
*/
package router
