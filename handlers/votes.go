// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/weekly-pulse/cliparse"
	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/middleware"
	"github.com/danielhkuo/weekly-pulse/models"
	"github.com/danielhkuo/weekly-pulse/pagination"
	"github.com/danielhkuo/weekly-pulse/voting"
)

type VoteHandler struct {
	store  db.Store
	caster *voting.Caster
}

func NewVoteHandler(store db.Store, cfg cliparse.Config) *VoteHandler {
	policy := voting.AllowRepeatVotes
	if cfg.SingleVotePerWallet {
		policy = voting.SingleVotePerWallet
	}

	return &VoteHandler{
		store:  store,
		caster: voting.NewCaster(store, policy),
	}
}

// CastVote handles POST /api/vote
// The survey may have been deactivated between the client loading the
// page and submitting; that case surfaces as a 404. No expiration pass
// runs here - only reads of "the current active survey" trigger it.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote, err := h.caster.Cast(r.Context(), req)
	switch {
	case errors.Is(err, voting.ErrMissingFields):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	case errors.Is(err, voting.ErrSurveyNotActive):
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found or not active")
		return
	case errors.Is(err, voting.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusConflict, "Wallet has already voted on this survey")
		return
	case err != nil:
		slog.Error("failed to cast vote", "survey_id", req.SurveyID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote cast", "survey_id", vote.SurveyID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Success: true,
		Vote:    vote,
	})
}

// GetVoteLog handles GET /api/votes/log?page=N
// Pages of 100 entries, newest first. Entries carry no vote_option - the
// log shows who voted when, not what they chose.
func (h *VoteHandler) GetVoteLog(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))
	from, to := pagination.Window(page, pagination.DefaultPageSize)

	entries, count, err := h.store.VoteLog(r.Context(), from, to)
	if err != nil {
		slog.Error("failed to query vote log", "page", page, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if entries == nil {
		entries = []models.VoteLogEntry{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.VoteLogResponse{
		VotesLog:    entries,
		TotalItems:  count,
		TotalPages:  pagination.TotalPages(count, pagination.DefaultPageSize),
		CurrentPage: page,
	})
}
