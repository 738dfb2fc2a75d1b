package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

func TestHTTPStatus(t *testing.T) {
	cfgErr := &scoring.ConfigurationError{Field: "weights", Message: "weights sum to zero"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(cfgErr))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("resume 2: %w", cfgErr)))

	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("analysis result abc: %w", db.ErrNotFound)))

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
