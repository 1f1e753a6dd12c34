package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedField  string
	}{
		{"spot not found", ErrSpotNotFound, http.StatusNotFound, ""},
		{"booking not found", ErrBookingNotFound, http.StatusNotFound, ""},
		{"forbidden", ErrForbidden, http.StatusForbidden, ""},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"auth required", ErrAuthRequired, http.StatusUnauthorized, ""},
		{"duplicate email", ErrEmailExists, http.StatusConflict, "email"},
		{"duplicate username", ErrUsernameExists, http.StatusConflict, "username"},
		{"duplicate review", ErrDuplicateReview, http.StatusConflict, ""},
		{"booking conflict", ErrBookingConflict, http.StatusConflict, "startDate"},
		{"booking started", ErrBookingStarted, http.StatusForbidden, "startDate"},
		{"review image cap", ErrReviewImageLimit, http.StatusForbidden, "review"},
		{"unknown error is opaque", errors.New("driver: bad connection"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)

			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			if tt.expectedField != "" {
				assert.Contains(t, httpErr.Fields, tt.expectedField)
			}
		})
	}
}

func TestMapErrorToHTTP_UnknownErrorHidesDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "dial tcp")
}

func TestMapErrorToHTTP_ValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"startDate": "startDate cannot be in the past",
		"endDate":   "endDate cannot be on or before startDate",
	})

	httpErr := MapErrorToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Bad Request", httpErr.Message)
	assert.Len(t, httpErr.Fields, 2)
}
