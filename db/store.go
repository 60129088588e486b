// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/weekly-pulse/models"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// Store is the gateway to the survey and vote tables. Handlers and the
// lifecycle/tally components depend on this interface rather than a
// concrete connection, so tests can run against an in-memory database.
type Store interface {
	// ActiveSurveys returns every survey still flagged active, oldest first.
	ActiveSurveys(ctx context.Context) ([]models.Survey, error)

	// ActiveSurvey returns the newest active survey, or nil when none
	// exists. If a race has left several surveys active, the most recently
	// created one wins.
	ActiveSurvey(ctx context.Context) (*models.Survey, error)

	// ActiveSurveyByID returns the survey only if it exists AND is still
	// active; nil otherwise.
	ActiveSurveyByID(ctx context.Context, id string) (*models.Survey, error)

	// DeactivateSurvey flips active to false for the given survey.
	DeactivateSurvey(ctx context.Context, id string) error

	// InsertSurvey stores a new survey with active=true and returns the
	// row with its assigned id.
	InsertSurvey(ctx context.Context, question string, createdAt time.Time) (models.Survey, error)

	// ListSurveys returns all surveys, newest first.
	ListSurveys(ctx context.Context) ([]models.Survey, error)

	// InactiveSurveys returns up to limit inactive surveys, newest first.
	InactiveSurveys(ctx context.Context, limit int) ([]models.Survey, error)

	// VoteOptions returns the vote_option column of every vote for a
	// survey. Unbounded: the tally is recomputed from the full vote set.
	VoteOptions(ctx context.Context, surveyID string) ([]string, error)

	// HasVote reports whether the wallet has already voted on the survey.
	HasVote(ctx context.Context, surveyID, walletAddress string) (bool, error)

	// InsertVote stores a vote and returns the row with its assigned id.
	// No uniqueness is enforced on (survey_id, wallet_address); repeat
	// votes are a policy decision made above this layer.
	InsertVote(ctx context.Context, surveyID, walletAddress, voteOption string, createdAt time.Time) (models.Vote, error)

	// VoteLog returns the window [from, to] (inclusive, zero-based) of the
	// vote log ordered by created_at descending, along with the exact
	// total row count.
	VoteLog(ctx context.Context, from, to int) ([]models.VoteLogEntry, int, error)
}
