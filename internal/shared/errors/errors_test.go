package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_CodesAndTypes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		errType  ErrorType
		httpCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("duplicate"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("nope"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"gateway", NewGatewayError("gateway down"), ErrorTypeGateway, http.StatusBadGateway},
		{"integrity", NewIntegrityError("hash mismatch"), ErrorTypeIntegrity, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.httpCode, tt.err.Code)
		})
	}
}

func TestGetAppError_UnwrapsWrappedErrors(t *testing.T) {
	inner := NewGatewayError("gateway down")
	wrapped := fmt.Errorf("initiation failed: %w", inner)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeGateway, appErr.Type)
	assert.True(t, IsGatewayError(wrapped))
}

func TestGetAppError_NilForPlainErrors(t *testing.T) {
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsConflictError(NewConflictError("x")))
	assert.True(t, IsIntegrityError(NewIntegrityError("x")))
	assert.False(t, IsGatewayError(NewIntegrityError("x")))
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewValidationError("bad input", "field amount")
	assert.Contains(t, err.Error(), "bad input")
	assert.Contains(t, err.Error(), "field amount")
}
