// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package survey manages the poll lifecycle: which survey is live, the
// seven-day expiration rule, and survey creation.
//
// Expiration is pull-triggered. There is no background job; every read
// that depends on "the current active survey" runs ExpireStale first, so
// a backlog of stale surveys is caught up on the next request no matter
// how long the service sat idle.
package survey

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/models"
)

// MaxAge is how long a survey stays active after creation.
const MaxAge = 7 * 24 * time.Hour

// ErrEmptyQuestion is returned by Create for a blank question.
var ErrEmptyQuestion = errors.New("question is required")

// Manager drives survey lifecycle transitions against the store.
type Manager struct {
	store db.Store
	now   func() time.Time
}

func NewManager(store db.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// ExpireStale deactivates every active survey created seven or more days
// ago. Nothing here is fatal to the caller: a failed fetch skips the pass,
// and a failed per-survey update is logged and the pass moves on. The
// transition only needs to be eventual - any later call catches up.
func (m *Manager) ExpireStale(ctx context.Context) {
	surveys, err := m.store.ActiveSurveys(ctx)
	if err != nil {
		slog.Error("failed to fetch active surveys for expiration", "error", err)
		return
	}

	now := m.now()
	for _, survey := range surveys {
		if now.Sub(survey.CreatedAt) < MaxAge {
			continue
		}

		if err := m.store.DeactivateSurvey(ctx, survey.ID); err != nil {
			slog.Error("failed to deactivate stale survey",
				"survey_id", survey.ID,
				"error", err,
			)
			continue
		}

		slog.Info("survey expired",
			"survey_id", survey.ID,
			"question", survey.Question,
			"age", humanize.Time(survey.CreatedAt),
		)
	}
}

// Active returns the current live survey, or nil when there is none.
// Runs the expiration pass first, so callers always observe at most one
// survey that is genuinely within its seven-day window.
func (m *Manager) Active(ctx context.Context) (*models.Survey, error) {
	m.ExpireStale(ctx)
	return m.store.ActiveSurvey(ctx)
}

// Create validates the question and inserts a new active survey. It does
// NOT deactivate the current survey; two creates racing each other can
// leave two active surveys until the next expiration pass, and reads
// resolve the overlap by taking the newest.
func (m *Manager) Create(ctx context.Context, question string) (models.Survey, error) {
	if question == "" {
		return models.Survey{}, ErrEmptyQuestion
	}
	return m.store.InsertSurvey(ctx, question, m.now().UTC())
}
