// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"testing"
	"time"

	"github.com/danielhkuo/weekly-pulse/db"
	"github.com/danielhkuo/weekly-pulse/testutil"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name      string
		options   []string
		total     int
		yes       int
		no        int
		yesPct    float64
		noPct     float64
	}{
		{
			name:    "no votes",
			options: nil,
			total:   0, yes: 0, no: 0, yesPct: 0, noPct: 0,
		},
		{
			name:    "two yes one no",
			options: []string{"yes", "yes", "no"},
			total:   3, yes: 2, no: 1,
			yesPct: 200.0 / 3, noPct: 100.0 / 3,
		},
		{
			name:    "all no",
			options: []string{"no", "no"},
			total:   2, yes: 0, no: 2, yesPct: 0, noPct: 100,
		},
		{
			name:    "stray option counts toward total only",
			options: []string{"yes", "maybe", "no", "no"},
			total:   4, yes: 1, no: 2,
			yesPct: 25, noPct: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.options)
			if got.TotalVotes != tt.total {
				t.Errorf("TotalVotes = %d, want %d", got.TotalVotes, tt.total)
			}
			if got.YesCount != tt.yes || got.NoCount != tt.no {
				t.Errorf("counts = %d/%d, want %d/%d", got.YesCount, got.NoCount, tt.yes, tt.no)
			}
			if !closeEnough(got.YesPercentage, tt.yesPct) || !closeEnough(got.NoPercentage, tt.noPct) {
				t.Errorf("percentages = %v/%v, want %v/%v", got.YesPercentage, got.NoPercentage, tt.yesPct, tt.noPct)
			}
		})
	}
}

func closeEnough(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{200.0 / 3, "66.67"},
		{100.0 / 3, "33.33"},
		{25, "25.00"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.value); got != tt.expected {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestEngineForSurvey(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewSQLStore(conn)
	engine := NewEngine(store)

	surveyID := testutil.CreateTestSurvey(t, conn, "Ship the upgrade?", true, time.Now().UTC())
	for i := 0; i < 10; i++ {
		testutil.CastTestVote(t, conn, surveyID, testutil.TestWallet(i), "yes", time.Now().UTC())
	}
	for i := 10; i < 15; i++ {
		testutil.CastTestVote(t, conn, surveyID, testutil.TestWallet(i), "no", time.Now().UTC())
	}

	tally, err := engine.ForSurvey(context.Background(), surveyID)
	if err != nil {
		t.Fatalf("ForSurvey failed: %v", err)
	}

	if tally.TotalVotes != 15 {
		t.Errorf("TotalVotes = %d, want 15", tally.TotalVotes)
	}
	if FormatPercent(tally.YesPercentage) != "66.67" {
		t.Errorf("yes percentage = %q, want 66.67", FormatPercent(tally.YesPercentage))
	}
	if FormatPercent(tally.NoPercentage) != "33.33" {
		t.Errorf("no percentage = %q, want 33.33", FormatPercent(tally.NoPercentage))
	}
}

func TestEngineForSurveyNoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewSQLStore(conn)
	engine := NewEngine(store)

	surveyID := testutil.CreateTestSurvey(t, conn, "Anyone out there?", true, time.Now().UTC())

	tally, err := engine.ForSurvey(context.Background(), surveyID)
	if err != nil {
		t.Fatalf("ForSurvey failed: %v", err)
	}

	if tally.TotalVotes != 0 || tally.YesPercentage != 0 || tally.NoPercentage != 0 {
		t.Errorf("expected zero tally, got %+v", tally)
	}
}

func TestEngineHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewSQLStore(conn)
	engine := NewEngine(store)

	base := time.Now().UTC().Add(-30 * 24 * time.Hour)
	first := testutil.CreateTestSurvey(t, conn, "First question?", false, base)
	second := testutil.CreateTestSurvey(t, conn, "Second question?", false, base.Add(7*24*time.Hour))

	testutil.CastTestVote(t, conn, first, testutil.TestWallet(0), "yes", base)
	testutil.CastTestVote(t, conn, first, testutil.TestWallet(1), "yes", base)
	testutil.CastTestVote(t, conn, second, testutil.TestWallet(2), "no", base)

	surveys, err := store.InactiveSurveys(context.Background(), 100)
	if err != nil {
		t.Fatalf("InactiveSurveys failed: %v", err)
	}

	stats, err := engine.History(context.Background(), surveys)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stats))
	}

	// Newest first, raw float percentages.
	if stats[0].ID != second {
		t.Errorf("expected newest survey first, got %s", stats[0].ID)
	}
	if stats[0].TotalVotes != 1 || stats[0].NoPercentage != 100 {
		t.Errorf("unexpected stats for newest survey: %+v", stats[0])
	}
	if stats[1].TotalVotes != 2 || stats[1].YesPercentage != 100 {
		t.Errorf("unexpected stats for oldest survey: %+v", stats[1])
	}
}
