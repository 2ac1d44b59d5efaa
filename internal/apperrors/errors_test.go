package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", ErrValidation, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("video lookup: %w", ErrNotFound), http.StatusNotFound},
		{"forbidden helper", Forbidden("You are not allowed to edit this video"), http.StatusForbidden},
		{"duplicate helper", Duplicate("User already exists"), http.StatusConflict},
		{"refresh expired", ErrRefreshTokenExpired, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"internal helper", Internal("Failed to upload", errors.New("s3 down")), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessageHidesInternalCause(t *testing.T) {
	assert.Equal(t, "Something went wrong", PublicMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Failed to upload", PublicMessage(Internal("Failed to upload", errors.New("s3 down"))))
	assert.Equal(t, "Video not found", PublicMessage(fmt.Errorf("wrap: %w", NotFound("Video not found"))))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := Unauthorized("Invalid user credentials")
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "Invalid user credentials: unauthorized request", err.Error())
}
