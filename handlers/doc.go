// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Weekly Pulse API.

# Handler Types

Each handler is a struct holding the store gateway and the core
components it orchestrates:

  - SurveyHandler: active survey, history, listing, creation
  - VoteHandler: vote casting and the paginated vote log

Handlers are created via constructor functions that accept the store:

	surveyHandler := handlers.NewSurveyHandler(store)
	voteHandler := handlers.NewVoteHandler(store, cfg)

# Survey Rotation

Exactly one survey is meant to be live at a time. Reads of the active
survey run the lazy expiration pass first (see package survey), so a
survey older than seven days disappears on the next read:

	GET  /api/active-survey   → GetActiveSurvey (expires first)
	GET  /api/surveys/history → GetHistory (last 100 inactive)
	GET  /api/polls           → ListSurveys
	POST /api/polls           → CreateSurvey

# Voting Flow

	POST /api/vote      → CastVote (404 if the survey is gone or closed)
	GET  /api/votes/log → GetVoteLog (?page=N, 100 per page)

The wallet address is taken from the request body as-is. On-chain
transaction handling lives entirely in the frontend.

# Error Shape

All error responses are {"error": message}: 400 for validation, 404 for
a missing/inactive survey, 409 when the single-vote policy rejects a
wallet, 500 for store failures.
*/
package handlers
