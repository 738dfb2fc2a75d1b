package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalysisRecord is one persisted scoring result. The full MatchResult is
// stored as JSONB; score is duplicated as a column for sorting and listing.
type AnalysisRecord struct {
	ID               uuid.UUID         `json:"id"`
	FileID           uuid.UUID         `json:"file_id"`
	JobDescriptionID uuid.UUID         `json:"job_description_id"`
	Score            float64           `json:"score"`
	Result           types.MatchResult `json:"result"`
	CreatedAt        time.Time         `json:"created_at"`
}

// SaveJobDescription stores a job description and returns its ID.
func (db *DB) SaveJobDescription(ctx context.Context, text string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (description_text)
		 VALUES ($1)
		 RETURNING id`,
		text,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// GetJobDescription retrieves a job description text by ID.
// Returns empty string if not found.
func (db *DB) GetJobDescription(ctx context.Context, id uuid.UUID) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT description_text FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get job description: %w", err)
	}
	return text, nil
}

// SaveAnalysisResult upserts a scoring result keyed by (file_id,
// job_description_id). Re-analyzing the same pair overwrites the stored
// result.
func (db *DB) SaveAnalysisResult(ctx context.Context, fileID, jobDescriptionID uuid.UUID, result types.MatchResult) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analysis_results (file_id, job_description_id, score, result)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (file_id, job_description_id)
		 DO UPDATE SET score = $3, result = $4, created_at = NOW()
		 RETURNING id`,
		fileID, jobDescriptionID, result.Score, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis result: %w", err)
	}
	return id, nil
}

// GetAnalysisResult retrieves a stored result by ID. Returns nil if not found.
func (db *DB) GetAnalysisResult(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var resultBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, file_id, job_description_id, score, result, created_at
		 FROM analysis_results WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.FileID, &rec.JobDescriptionID, &rec.Score, &resultBytes, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}

	if err := json.Unmarshal(resultBytes, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &rec, nil
}

// ResultFilters holds optional filters for listing analysis results
type ResultFilters struct {
	JobDescriptionID uuid.UUID
	MinScore         float64
	Limit            int
}

// ListAnalysisResults retrieves stored results ordered by score, highest
// first.
func (db *DB) ListAnalysisResults(ctx context.Context, filters ResultFilters) ([]AnalysisRecord, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, file_id, job_description_id, score, result, created_at
		FROM analysis_results WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobDescriptionID != uuid.Nil {
		query += fmt.Sprintf(" AND job_description_id = $%d", argNum)
		args = append(args, filters.JobDescriptionID)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY score DESC, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis results: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var resultBytes []byte
		if err := rows.Scan(&rec.ID, &rec.FileID, &rec.JobDescriptionID, &rec.Score, &resultBytes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis result: %w", err)
		}
		if err := json.Unmarshal(resultBytes, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to decode analysis result: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteAnalysisResult removes a stored result by ID.
func (db *DB) DeleteAnalysisResult(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis result %s: %w", id, ErrNotFound)
	}
	return nil
}
