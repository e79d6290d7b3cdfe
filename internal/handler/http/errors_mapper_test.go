package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/co-script/internal/service"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/validators"
)

func TestReplyFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation error", validators.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
		{"wrapped validation error", fmt.Errorf("signup: %w", validators.ErrContentRequired), http.StatusBadRequest, "Content required"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid login credentials"},
		{"duplicate email", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict, "Email already registered"},
		{"script not found", store.ErrScriptNotFound, http.StatusNotFound, "Not found"},
		{"watchlist not found", store.ErrWatchlistNotFound, http.StatusNotFound, "Not found"},
		{"ai not configured", service.ErrAINotConfigured, http.StatusInternalServerError, "AI not configured"},
		{"ai upstream", fmt.Errorf("%w: timeout", service.ErrAIUpstream), http.StatusInternalServerError, "AI error"},
		{"version conflict", store.ErrVersionConflict, http.StatusInternalServerError, "Version conflict, please retry"},
		{"unknown error hides details", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := replyFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
