// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/models"
	"github.com/danielhkuo/weekly-pulse/testutil"
)

func TestCastVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVoteHandler(db.NewSQLStore(conn), testutil.GetTestConfig())

	activeID := testutil.CreateTestSurvey(t, conn, "Live question", true, time.Now().UTC())
	closedID := testutil.CreateTestSurvey(t, conn, "Closed question", false, time.Now().UTC().Add(-10*24*time.Hour))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid vote",
			requestBody: models.CastVoteRequest{
				SurveyID:      activeID,
				WalletAddress: testutil.TestWallet(0),
				VoteOption:    "yes",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "repeat wallet accepted by default",
			requestBody: models.CastVoteRequest{
				SurveyID:      activeID,
				WalletAddress: testutil.TestWallet(0),
				VoteOption:    "no",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing fields",
			requestBody: models.CastVoteRequest{
				SurveyID: activeID,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "inactive survey",
			requestBody: models.CastVoteRequest{
				SurveyID:      closedID,
				WalletAddress: testutil.TestWallet(1),
				VoteOption:    "yes",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown survey",
			requestBody: models.CastVoteRequest{
				SurveyID:      "no-such-survey",
				WalletAddress: testutil.TestWallet(1),
				VoteOption:    "yes",
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/vote", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.CastVoteResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("expected success true")
			}
			if resp.Vote.ID == "" {
				t.Error("expected the stored vote row back")
			}
		})
	}
}

func TestCastVoteInvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVoteHandler(db.NewSQLStore(conn), testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/api/vote", nil)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCastVoteSingleVotePolicy(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.SingleVotePerWallet = true
	handler := NewVoteHandler(db.NewSQLStore(conn), cfg)

	surveyID := testutil.CreateTestSurvey(t, conn, "One each", true, time.Now().UTC())

	body := models.CastVoteRequest{
		SurveyID:      surveyID,
		WalletAddress: testutil.TestWallet(0),
		VoteOption:    "yes",
	}

	w := httptest.NewRecorder()
	handler.CastVote(w, testutil.MakeRequest("POST", "/api/vote", body, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.CastVote(w, testutil.MakeRequest("POST", "/api/vote", body, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestGetVoteLog(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVoteHandler(db.NewSQLStore(conn), testutil.GetTestConfig())

	surveyID := testutil.CreateTestSurvey(t, conn, "Busy question", true, time.Now().UTC())

	// 250 votes with strictly increasing timestamps.
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 250; i++ {
		testutil.CastTestVote(t, conn, surveyID, testutil.TestWallet(i), "yes", base.Add(time.Duration(i)*time.Second))
	}

	tests := []struct {
		name        string
		query       string
		wantLen     int
		wantPage    int
		firstWallet string
	}{
		{
			name:        "default page",
			query:       "",
			wantLen:     100,
			wantPage:    1,
			firstWallet: testutil.TestWallet(249),
		},
		{
			name:        "second page",
			query:       "?page=2",
			wantLen:     100,
			wantPage:    2,
			firstWallet: testutil.TestWallet(149),
		},
		{
			name:        "last partial page",
			query:       "?page=3",
			wantLen:     50,
			wantPage:    3,
			firstWallet: testutil.TestWallet(49),
		},
		{
			name:     "page past the end",
			query:    "?page=9",
			wantLen:  0,
			wantPage: 9,
		},
		{
			name:        "garbage page falls back to 1",
			query:       "?page=banana",
			wantLen:     100,
			wantPage:    1,
			firstWallet: testutil.TestWallet(249),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/votes/log"+tt.query, nil, nil)
			w := httptest.NewRecorder()
			handler.GetVoteLog(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.VoteLogResponse
			testutil.AssertJSON(t, w, &resp)

			if len(resp.VotesLog) != tt.wantLen {
				t.Errorf("len(votesLog) = %d, want %d", len(resp.VotesLog), tt.wantLen)
			}
			if resp.TotalItems != 250 {
				t.Errorf("totalItems = %d, want 250", resp.TotalItems)
			}
			if resp.TotalPages != 3 {
				t.Errorf("totalPages = %d, want 3", resp.TotalPages)
			}
			if resp.CurrentPage != tt.wantPage {
				t.Errorf("currentPage = %d, want %d", resp.CurrentPage, tt.wantPage)
			}

			if tt.wantLen > 0 && resp.VotesLog[0].WalletAddress != tt.firstWallet {
				t.Errorf("first entry wallet = %s, want %s", resp.VotesLog[0].WalletAddress, tt.firstWallet)
			}
		})
	}
}

func TestGetVoteLogProjection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVoteHandler(db.NewSQLStore(conn), testutil.GetTestConfig())

	surveyID := testutil.CreateTestSurvey(t, conn, "Question", true, time.Now().UTC())
	testutil.CastTestVote(t, conn, surveyID, testutil.TestWallet(0), "yes", time.Now().UTC())

	req := testutil.MakeRequest("GET", "/api/votes/log", nil, nil)
	w := httptest.NewRecorder()
	handler.GetVoteLog(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// The log must never leak what was voted.
	if body := w.Body.String(); strings.Contains(body, `"vote_option"`) {
		t.Errorf("vote log leaks vote_option: %s", body)
	}
}

func TestGetVoteLogEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVoteHandler(db.NewSQLStore(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/votes/log", nil, nil)
	w := httptest.NewRecorder()
	handler.GetVoteLog(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteLogResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalItems != 0 || resp.TotalPages != 0 || len(resp.VotesLog) != 0 {
		t.Errorf("expected empty log, got %+v", resp)
	}
}
