// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tally computes yes/no vote aggregates for one or many surveys.
//
// The tally is never persisted; it is recomputed from the vote table on
// every read. Percentages are carried as floats here. Only the
// active-survey endpoint formats them to two decimals - the history
// listing returns the raw values.
package tally

import (
	"context"
	"strconv"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/models"
)

// Tally is the derived aggregate for one survey.
type Tally struct {
	TotalVotes    int
	YesCount      int
	NoCount       int
	YesPercentage float64
	NoPercentage  float64
}

// Count tallies a slice of vote_option values. Options other than
// "yes"/"no" are not counted on either side but still contribute to
// TotalVotes, so TotalVotes can exceed YesCount+NoCount when stray
// option values exist. That is the long-standing observable behavior;
// do not "fix" it without changing the wire contract.
func Count(options []string) Tally {
	t := Tally{TotalVotes: len(options)}
	for _, option := range options {
		switch option {
		case models.OptionYes:
			t.YesCount++
		case models.OptionNo:
			t.NoCount++
		}
	}

	if t.TotalVotes == 0 {
		return t
	}
	t.YesPercentage = float64(t.YesCount) / float64(t.TotalVotes) * 100
	t.NoPercentage = float64(t.NoCount) / float64(t.TotalVotes) * 100
	return t
}

// FormatPercent renders a percentage with exactly two decimal places,
// e.g. 66.666... -> "66.67" and 0 -> "0.00".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Engine computes tallies against the store.
type Engine struct {
	store db.Store
}

func NewEngine(store db.Store) *Engine {
	return &Engine{store: store}
}

// ForSurvey fetches every vote for the survey and counts it. The fetch is
// unbounded; correctness is limited only by memory.
func (e *Engine) ForSurvey(ctx context.Context, surveyID string) (Tally, error) {
	options, err := e.store.VoteOptions(ctx, surveyID)
	if err != nil {
		return Tally{}, err
	}
	return Count(options), nil
}

// History applies ForSurvey to each survey in the given order and merges
// the result into SurveyWithStats rows. A survey whose vote fetch fails
// is dropped from the result rather than failing the whole listing.
func (e *Engine) History(ctx context.Context, surveys []models.Survey) ([]models.SurveyWithStats, error) {
	stats := make([]models.SurveyWithStats, 0, len(surveys))
	for _, survey := range surveys {
		t, err := e.ForSurvey(ctx, survey.ID)
		if err != nil {
			continue
		}
		stats = append(stats, models.SurveyWithStats{
			Survey:        survey,
			TotalVotes:    t.TotalVotes,
			YesPercentage: t.YesPercentage,
			NoPercentage:  t.NoPercentage,
		})
	}
	return stats, nil
}
