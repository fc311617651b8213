package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := Wrap(cause, CodeDatabaseError, "jobs", "query failed", http.StatusInternalServerError)

	assert.ErrorIs(t, wrapped, cause)

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, CodeDatabaseError, appErr.Code)
}

func TestConflictMapsToBadRequest(t *testing.T) {
	err := ErrConflict("bids", "duplicate bid")
	assert.Equal(t, CodeConflict, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
}

func TestInvalidStatusMapsToBadRequest(t *testing.T) {
	err := ErrInvalidStatus("jobs", "job is not open")
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
}

func TestInternalErrorSurfacesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := InternalError(cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
	assert.Contains(t, err.Details, "disk full")
}

func TestPredefinedHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrJobNotFound.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotJobOwner.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrDuplicateBid.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrJobNotOpen.HTTPCode)
}
