// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/weekly-pulse/models"
)

// SQLStore implements Store on top of database/sql. The same
// implementation serves Postgres (lib/pq) and sqlite (modernc.org/sqlite);
// queries stick to the portable subset and $n placeholders, which both
// drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const surveyColumns = "id, question, active, created_at"

func scanSurvey(row interface{ Scan(...any) error }) (models.Survey, error) {
	var s models.Survey
	err := row.Scan(&s.ID, &s.Question, &s.Active, &s.CreatedAt)
	return s, err
}

func (s *SQLStore) ActiveSurveys(ctx context.Context) ([]models.Survey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE active = $1
		ORDER BY created_at ASC
	`, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query active surveys: %w", err)
	}
	defer rows.Close()

	return collectSurveys(rows)
}

func (s *SQLStore) ActiveSurvey(ctx context.Context) (*models.Survey, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE active = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, true)

	survey, err := scanSurvey(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active survey: %w", err)
	}
	return &survey, nil
}

func (s *SQLStore) ActiveSurveyByID(ctx context.Context, id string) (*models.Survey, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE id = $1 AND active = $2
	`, id, true)

	survey, err := scanSurvey(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query survey %s: %w", id, err)
	}
	return &survey, nil
}

func (s *SQLStore) DeactivateSurvey(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE survey SET active = $1 WHERE id = $2
	`, false, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate survey %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for survey %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) InsertSurvey(ctx context.Context, question string, createdAt time.Time) (models.Survey, error) {
	survey := models.Survey{
		ID:        uuid.NewString(),
		Question:  question,
		Active:    true,
		CreatedAt: createdAt,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO survey (id, question, active, created_at)
		VALUES ($1, $2, $3, $4)
	`, survey.ID, survey.Question, survey.Active, survey.CreatedAt)
	if err != nil {
		return models.Survey{}, fmt.Errorf("failed to insert survey: %w", err)
	}

	return survey, nil
}

func (s *SQLStore) ListSurveys(ctx context.Context) ([]models.Survey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer rows.Close()

	return collectSurveys(rows)
}

func (s *SQLStore) InactiveSurveys(ctx context.Context, limit int) ([]models.Survey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey
		WHERE active = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, false, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query inactive surveys: %w", err)
	}
	defer rows.Close()

	return collectSurveys(rows)
}

func (s *SQLStore) VoteOptions(ctx context.Context, surveyID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vote_option FROM vote WHERE survey_id = $1
	`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes for survey %s: %w", surveyID, err)
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var option string
		if err := rows.Scan(&option); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		options = append(options, option)
	}
	return options, rows.Err()
}

func (s *SQLStore) HasVote(ctx context.Context, surveyID, walletAddress string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM vote WHERE survey_id = $1 AND wallet_address = $2
		)
	`, surveyID, walletAddress).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

func (s *SQLStore) InsertVote(ctx context.Context, surveyID, walletAddress, voteOption string, createdAt time.Time) (models.Vote, error) {
	vote := models.Vote{
		ID:            uuid.NewString(),
		SurveyID:      surveyID,
		WalletAddress: walletAddress,
		VoteOption:    voteOption,
		CreatedAt:     createdAt,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, survey_id, wallet_address, vote_option, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.SurveyID, vote.WalletAddress, vote.VoteOption, vote.CreatedAt)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	return vote, nil
}

func (s *SQLStore) VoteLog(ctx context.Context, from, to int) ([]models.VoteLogEntry, int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}

	// from/to are inclusive zero-based row positions.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, survey_id, wallet_address
		FROM vote
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, to-from+1, from)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vote log: %w", err)
	}
	defer rows.Close()

	var entries []models.VoteLogEntry
	for rows.Next() {
		var e models.VoteLogEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.SurveyID, &e.WalletAddress); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote log row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}

func collectSurveys(rows *sql.Rows) ([]models.Survey, error) {
	var surveys []models.Survey
	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan survey row: %w", err)
		}
		surveys = append(surveys, survey)
	}
	return surveys, rows.Err()
}
