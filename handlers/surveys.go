// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/middleware"
	"github.com/danielhkuo/weekly-pulse/models"
	"github.com/danielhkuo/weekly-pulse/survey"
	"github.com/danielhkuo/weekly-pulse/tally"
)

// HistoryWindow is the fixed number of inactive surveys served by the
// history endpoint. The history is a single window, not a true paginated
// listing - the frontend has never asked for page two.
const HistoryWindow = 100

type SurveyHandler struct {
	store   db.Store
	manager *survey.Manager
	tallies *tally.Engine
}

func NewSurveyHandler(store db.Store) *SurveyHandler {
	return &SurveyHandler{
		store:   store,
		manager: survey.NewManager(store),
		tallies: tally.NewEngine(store),
	}
}

// GetActiveSurvey handles GET /api/active-survey
// Runs the expiration pass, then returns the live survey with its tally,
// or {survey: null, results: null} when nothing is live.
func (h *SurveyHandler) GetActiveSurvey(w http.ResponseWriter, r *http.Request) {
	active, err := h.manager.Active(r.Context())
	if err != nil {
		slog.Error("failed to query active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if active == nil {
		middleware.JSONResponse(w, http.StatusOK, models.ActiveSurveyResponse{})
		return
	}

	t, err := h.tallies.ForSurvey(r.Context(), active.ID)
	if err != nil {
		slog.Error("failed to tally votes", "survey_id", active.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ActiveSurveyResponse{
		Survey: active,
		Results: &models.Results{
			YesPercentage: tally.FormatPercent(t.YesPercentage),
			NoPercentage:  tally.FormatPercent(t.NoPercentage),
			TotalVotes:    t.TotalVotes,
		},
	})
}

// GetHistory handles GET /api/surveys/history
// Returns the most recent 100 inactive surveys, newest first, each with
// its vote stats.
func (h *SurveyHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.InactiveSurveys(r.Context(), HistoryWindow)
	if err != nil {
		slog.Error("failed to query survey history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats, err := h.tallies.History(r.Context(), surveys)
	if err != nil {
		slog.Error("failed to tally survey history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{History: stats})
}

// ListSurveys handles GET /api/polls
// Plain listing of every survey, newest first, no stats.
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.ListSurveys(r.Context())
	if err != nil {
		slog.Error("failed to list surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if surveys == nil {
		surveys = []models.Survey{}
	}
	middleware.JSONResponse(w, http.StatusOK, surveys)
}

// CreateSurvey handles POST /api/polls
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := h.manager.Create(r.Context(), req.Question)
	if errors.Is(err, survey.ErrEmptyQuestion) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing question")
		return
	}
	if err != nil {
		slog.Error("failed to create survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey created", "survey_id", created.ID, "question", created.Question)

	middleware.JSONResponse(w, http.StatusOK, created)
}
