// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionMap maps canonical section names (lower-case) to their text content.
// A missing key means the section was not detected, not that it is empty.
type SectionMap map[string]string

// AspectScores holds the five independent 0-100 sub-scores.
type AspectScores struct {
	Skills       float64 `json:"skills"`
	Experience   float64 `json:"experience"`
	Achievements float64 `json:"achievements"`
	Education    float64 `json:"education"`
	CulturalFit  float64 `json:"culturalFit"`
}

// MatchResult is the terminal output of one scoring request.
type MatchResult struct {
	Score            float64      `json:"score"`
	MatchedKeywords  []string     `json:"matchedKeywords"`
	MissingKeywords  []string     `json:"missingKeywords"`
	AspectScores     AspectScores `json:"aspectScores"`
	AchievementBonus float64      `json:"achievementBonus"`
	Recommendations  []string     `json:"recommendations"`
	Analysis         string       `json:"analysis,omitempty"`
}

// AnalyzeRequest is the request body accepted by the analyze endpoints.
// Weights are optional; omitted aspects fall back to the configured profile.
type AnalyzeRequest struct {
	ResumeText         string             `json:"resumeText" validate:"required"`
	JobDescriptionText string             `json:"jobDescriptionText" validate:"required"`
	Weights            map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
	FileID             string             `json:"fileId,omitempty" validate:"omitempty,uuid4"`
	JobDescriptionID   string             `json:"jobDescriptionId,omitempty" validate:"omitempty,uuid4"`
}

// AnalyzeResponse wraps a MatchResult with request bookkeeping fields.
type AnalyzeResponse struct {
	ID string `json:"id,omitempty"`
	MatchResult
	Filename string `json:"filename,omitempty"`
}

// BatchAnalyzeRequest scores several resumes against one job description.
type BatchAnalyzeRequest struct {
	Resumes            []BatchResume      `json:"resumes" validate:"required,min=1,dive"`
	JobDescriptionText string             `json:"jobDescriptionText" validate:"required"`
	Weights            map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
}

// BatchResume is one entry in a batch analysis request.
type BatchResume struct {
	Filename string `json:"filename,omitempty"`
	Text     string `json:"text" validate:"required"`
}

// BatchAnalyzeResponse holds per-resume results sorted by score, highest first.
type BatchAnalyzeResponse struct {
	Results []AnalyzeResponse `json:"results"`
}
