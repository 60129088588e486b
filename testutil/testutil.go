// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/weekly-pulse/cliparse"
	"github.com/danielhkuo/weekly-pulse/db"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; no external services needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single in-memory sqlite database exists per connection, so the
	// pool must not open a second one.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                3321,
		DatabaseURL:         ":memory:",
		DatabaseType:        "sqlite",
		SingleVotePerWallet: false,
	}
}

// CreateTestSurvey inserts a survey row and returns its ID
func CreateTestSurvey(t *testing.T, conn *sql.DB, question string, active bool, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO survey (id, question, active, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, question, active, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return id
}

// CastTestVote inserts a vote row and returns its ID
func CastTestVote(t *testing.T, conn *sql.DB, surveyID, walletAddress, voteOption string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, survey_id, wallet_address, vote_option, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, surveyID, walletAddress, voteOption, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// TestWallet returns a deterministic fake wallet address for index i
func TestWallet(i int) string {
	return fmt.Sprintf("0x%040x", i+1)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
