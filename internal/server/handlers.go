package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// batchConcurrency caps parallel scoring within one batch request.
const batchConcurrency = 4

// handleAnalyze scores one resume against one job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.engine.Score(r.Context(), req.ResumeText, req.JobDescriptionText, req.Weights)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := types.AnalyzeResponse{MatchResult: *result}

	// Persist when the caller supplied identifiers and storage is configured.
	if s.db != nil && req.FileID != "" && req.JobDescriptionID != "" {
		fileID, err := uuid.Parse(req.FileID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid fileId format")
			return
		}
		jobID, err := uuid.Parse(req.JobDescriptionID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid jobDescriptionId format")
			return
		}
		id, err := s.db.SaveAnalysisResult(r.Context(), fileID, jobID, *result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store result: "+err.Error())
			return
		}
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeBatch scores multiple resumes against one job description and
// returns the results ordered by score, best first.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	results := make([]types.AnalyzeResponse, len(req.Resumes))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, resume := range req.Resumes {
		g.Go(func() error {
			result, err := s.engine.Score(ctx, resume.Text, req.JobDescriptionText, req.Weights)
			if err != nil {
				return fmt.Errorf("resume %d: %w", i, err)
			}
			results[i] = types.AnalyzeResponse{
				MatchResult: *result,
				Filename:    resume.Filename,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	s.jsonResponse(w, http.StatusOK, types.BatchAnalyzeResponse{Results: results})
}

// handleListResults lists stored analysis results, best score first.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Result storage is not configured")
		return
	}

	var filters db.ResultFilters

	if v := r.URL.Query().Get("job_description_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid job_description_id format")
			return
		}
		filters.JobDescriptionID = id
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score value")
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		filters.Limit = limit
	}

	records, err := s.db.ListAnalysisResults(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if records == nil {
		records = []db.AnalysisRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": records})
}

// handleGetResult returns one stored analysis result by ID.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Result storage is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result ID format")
		return
	}

	record, err := s.db.GetAnalysisResult(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Result not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteResult removes one stored analysis result by ID.
func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Result storage is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result ID format")
		return
	}

	if err := s.db.DeleteAnalysisResult(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
