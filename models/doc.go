// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types for the
Weekly Pulse API.

# Domain Types

  - Survey: one poll question with an active flag and creation time
  - Vote: a single yes/no choice tied to a survey and wallet address
  - VoteLogEntry: public projection of a vote (no vote_option)
  - SurveyWithStats: survey merged with its vote aggregate

# Wire Format

Survey and vote rows serialize with snake_case column names
(id, question, active, created_at). Aggregates serialize with the
camelCase names the frontend has always consumed (yesPercentage,
noPercentage, totalVotes). The active-survey endpoint formats
percentages as two-decimal strings; the history endpoint returns raw
floats. Both shapes are deliberate and must not be unified silently.
*/
package models
