// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var cfgErr *scoring.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
