package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	return s
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)
	return rr
}

const testResume = `EXPERIENCE
Software Engineer with 5 years of experience building services in Python.
Increased revenue by 40% through performance tuning.

SKILLS
Python, SQL, Docker

EDUCATION
Bachelor of Science in Computer Science`

const testJob = `We are looking for an engineer with 3 years of experience.
Requirements: Python, SQL, Docker. Bachelor degree required.`

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText:         testResume,
		JobDescriptionText: testJob,
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp types.AnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	assert.Greater(t, resp.Score, 0.0)
	assert.LessOrEqual(t, resp.Score, 100.0)
	assert.Contains(t, resp.MatchedKeywords, "Python")
	assert.NotEmpty(t, resp.Recommendations)
	assert.Empty(t, resp.ID, "no storage configured, no ID assigned")
}

func TestHandleAnalyze_MissingJobText(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: testResume,
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation error")
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleAnalyze_MalformedFileID(t *testing.T) {
	s := newTestServer(t)

	// A non-UUID fileId must be rejected before any persistence is
	// attempted; silently scoring (or upserting a zero UUID) would hide the
	// caller's mistake.
	rr := doRequest(s, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText:         testResume,
		JobDescriptionText: testJob,
		FileID:             "not-a-uuid",
		JobDescriptionID:   "also-not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleAnalyze_UnknownWeightAspect(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText:         testResume,
		JobDescriptionText: testJob,
		Weights:            map[string]float64{"charisma": 1},
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "charisma")
}

func TestHandleAnalyzeBatch_SortsByScore(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze/batch", types.BatchAnalyzeRequest{
		JobDescriptionText: testJob,
		Resumes: []types.BatchResume{
			{Filename: "weak.txt", Text: "Barista with latte art experience."},
			{Filename: "strong.txt", Text: testResume},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp types.BatchAnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "strong.txt", resp.Results[0].Filename)
	assert.Equal(t, "weak.txt", resp.Results[1].Filename)
	assert.GreaterOrEqual(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestHandleAnalyzeBatch_EmptyResumes(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze/batch", types.BatchAnalyzeRequest{
		JobDescriptionText: testJob,
		Resumes:            []types.BatchResume{},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResultsEndpoints_WithoutStorage(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodGet, "/results", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = doRequest(s, http.MethodGet, "/results/2b1f8a80-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = doRequest(s, http.MethodDelete, "/results/2b1f8a80-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestAnalyze_RateLimitHeaders(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText:         testResume,
		JobDescriptionText: testJob,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Remaining"))
}

func TestAnalyze_Deterministic(t *testing.T) {
	s := newTestServer(t)

	req := types.AnalyzeRequest{
		ResumeText:         testResume,
		JobDescriptionText: testJob,
	}

	first := doRequest(s, http.MethodPost, "/analyze", req)
	second := doRequest(s, http.MethodPost, "/analyze", req)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
