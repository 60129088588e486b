// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/weekly-pulse/cliparse"
	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/handlers"
	"github.com/danielhkuo/weekly-pulse/middleware"
)

func NewRouter(store db.Store, cfg cliparse.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	// Routing failures answer in JSON like everything else.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(store)
	voteHandler := handlers.NewVoteHandler(store, cfg)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey rotation
	r.Get("/api/active-survey", surveyHandler.GetActiveSurvey)
	r.Get("/api/surveys/history", surveyHandler.GetHistory)
	r.Get("/api/polls", surveyHandler.ListSurveys)
	r.Post("/api/polls", surveyHandler.CreateSurvey)

	// Voting
	r.Post("/api/vote", voteHandler.CastVote)
	r.Get("/api/votes/log", voteHandler.GetVoteLog)

	return r
}
