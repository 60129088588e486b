// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package voting handles vote casting: field validation, the
// active-survey re-check, and the optional one-vote-per-wallet policy.
//
// The service trusts the client-supplied wallet address; there is no
// on-chain signature verification anywhere in this code path.
package voting

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/models"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrSurveyNotActive = errors.New("survey not found or not active")
	ErrDuplicateVote   = errors.New("wallet has already voted on this survey")
)

// Policy decides whether a wallet may cast a vote on a survey. It runs
// after the active-survey check and before the insert.
type Policy func(ctx context.Context, store db.Store, surveyID, walletAddress string) error

// AllowRepeatVotes accepts every vote. This is the default: the poll is
// informal and the store itself places no uniqueness on
// (survey_id, wallet_address).
func AllowRepeatVotes(ctx context.Context, store db.Store, surveyID, walletAddress string) error {
	return nil
}

// SingleVotePerWallet rejects a second vote from the same wallet on the
// same survey. Best-effort only - the check and the insert are not one
// transaction, so two simultaneous votes can still both land.
func SingleVotePerWallet(ctx context.Context, store db.Store, surveyID, walletAddress string) error {
	voted, err := store.HasVote(ctx, surveyID, walletAddress)
	if err != nil {
		return err
	}
	if voted {
		return ErrDuplicateVote
	}
	return nil
}

// Caster casts votes against the store under a configured policy.
type Caster struct {
	store  db.Store
	policy Policy
	now    func() time.Time
}

func NewCaster(store db.Store, policy Policy) *Caster {
	if policy == nil {
		policy = AllowRepeatVotes
	}
	return &Caster{store: store, policy: policy, now: time.Now}
}

// Cast validates the request, confirms the survey is still active, runs
// the policy, and inserts the vote. The survey can expire between the
// client loading the page and submitting - that case surfaces as
// ErrSurveyNotActive, not a store error.
//
// vote_option is deliberately not restricted to "yes"/"no" here; the
// tally ignores unknown options while still counting them in the total.
func (c *Caster) Cast(ctx context.Context, req models.CastVoteRequest) (models.Vote, error) {
	if req.SurveyID == "" || req.WalletAddress == "" || req.VoteOption == "" {
		return models.Vote{}, ErrMissingFields
	}

	found, err := c.store.ActiveSurveyByID(ctx, req.SurveyID)
	if err != nil {
		return models.Vote{}, err
	}
	if found == nil {
		return models.Vote{}, ErrSurveyNotActive
	}

	if err := c.policy(ctx, c.store, req.SurveyID, req.WalletAddress); err != nil {
		return models.Vote{}, err
	}

	return c.store.InsertVote(ctx, req.SurveyID, req.WalletAddress, req.VoteOption, c.now().UTC())
}
