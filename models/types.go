// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote option constants
const (
	OptionYes = "yes"
	OptionNo  = "no"
)

// Request types

type CreateSurveyRequest struct {
	Question string `json:"question"`
}

type CastVoteRequest struct {
	SurveyID      string `json:"survey_id"`
	WalletAddress string `json:"wallet_address"`
	VoteOption    string `json:"vote_option"`
}

// Response types

type ActiveSurveyResponse struct {
	Survey  *Survey  `json:"survey"`
	Results *Results `json:"results"`
}

// Results carries the aggregate for the active survey. Percentages are
// two-decimal strings ("66.67"), matching the public wire format.
type Results struct {
	YesPercentage string `json:"yesPercentage"`
	NoPercentage  string `json:"noPercentage"`
	TotalVotes    int    `json:"totalVotes"`
}

type HistoryResponse struct {
	History []SurveyWithStats `json:"history"`
}

type VoteLogResponse struct {
	VotesLog    []VoteLogEntry `json:"votesLog"`
	TotalItems  int            `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type CastVoteResponse struct {
	Success bool `json:"success"`
	Vote    Vote `json:"vote"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

type Survey struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID            string    `json:"id"`
	SurveyID      string    `json:"survey_id"`
	WalletAddress string    `json:"wallet_address"`
	VoteOption    string    `json:"vote_option"`
	CreatedAt     time.Time `json:"created_at"`
}

// VoteLogEntry is the public projection of a vote row. vote_option is
// intentionally absent from the log.
type VoteLogEntry struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	SurveyID      string    `json:"survey_id"`
	WalletAddress string    `json:"wallet_address"`
}

// SurveyWithStats is a survey merged with its tally for the history
// listing. Percentages here are raw floats, unlike the active-survey
// endpoint; the history view has always been served that way.
type SurveyWithStats struct {
	Survey
	TotalVotes    int     `json:"totalVotes"`
	YesPercentage float64 `json:"yesPercentage"`
	NoPercentage  float64 `json:"noPercentage"`
}
