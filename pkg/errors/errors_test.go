package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewUnauthorizedError("who"), http.StatusUnauthorized},
		{NewForbiddenError("no"), http.StatusForbidden},
		{NewNotFoundError("gone"), http.StatusNotFound},
		{NewConflictError("dup"), http.StatusConflict},
		{NewInternalError("boom", fmt.Errorf("x")), http.StatusInternalServerError},
		{NewExternalError("upstream", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAppError_PublicMessage(t *testing.T) {
	internal := NewInternalError("failed to list benches", fmt.Errorf("relation \"benches\" does not exist"))
	assert.Equal(t, `failed to list benches: relation "benches" does not exist`, internal.PublicMessage())

	validation := NewValidationError("body is required")
	assert.Equal(t, "body is required", validation.PublicMessage())
}

func TestAsAndIsType(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewForbiddenError("not yours"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeForbidden, appErr.Type)
	assert.True(t, IsType(wrapped, ErrorTypeForbidden))
	assert.False(t, IsType(wrapped, ErrorTypeNotFound))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeInternal))
}
