package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("claim_text", "required"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "claim_text",
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("get review entry: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "audit record not found",
			err:      audit.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "conflict",
			err:      services.ErrConflict,
			wantCode: http.StatusConflict,
			wantMsg:  "conflicting state change",
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
			wantMsg:  "resource already exists",
		},
		{
			name:     "dependency unavailable",
			err:      fmt.Errorf("%w: redis timed out", services.ErrDependencyUnavailable),
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  "dependency is unavailable",
		},
		{
			name:     "unexpected error",
			err:      errors.New("disk exploded"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := s.mapServiceError(context.Background(), tt.err)
			require.NotNil(t, he)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Contains(t, fmt.Sprint(he.Message), tt.wantMsg)
		})
	}
}
