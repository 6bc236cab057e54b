package platformerrors_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-insights/internal/utils/platformerrors"
)

func TestNewErrorCarriesRequestID(t *testing.T) {
	ctx := platformerrors.WithRequestID(context.Background(), "req-42")
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, platformerrors.ErrorTypeValidation, "Missing 'text' field", nil)

	assert.Equal(t, "req-42", err.GetRequestID())
	assert.NotEmpty(t, err.GetUUID())
	assert.Contains(t, err.Error(), "[route][VALIDATION]")
}

func TestAsErrorKeepsType(t *testing.T) {
	ctx := context.Background()
	inner := platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "missing", nil)

	wrapped := platformerrors.AsError(ctx, platformerrors.LayerHandler, inner, "analyze")
	require.NotNil(t, wrapped)
	assert.Equal(t, platformerrors.ErrorTypeNotFound, wrapped.GetErrorType())
	assert.Equal(t, inner.GetUUID(), wrapped.GetUUID())
	assert.True(t, errors.Is(wrapped, inner))

	plain := platformerrors.AsError(ctx, platformerrors.LayerHandler, errors.New("boom"), "analyze")
	assert.Equal(t, platformerrors.ErrorTypeInternal, plain.GetErrorType())

	assert.Nil(t, platformerrors.AsError(ctx, platformerrors.LayerHandler, nil, "noop"))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType platformerrors.ErrorType
		want      int
	}{
		{platformerrors.ErrorTypeValidation, http.StatusBadRequest},
		{platformerrors.ErrorTypeNotFound, http.StatusNotFound},
		{platformerrors.ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{platformerrors.ErrorTypeInternal, http.StatusInternalServerError},
		{platformerrors.ErrorTypeInput, http.StatusInternalServerError},
		{platformerrors.ErrorType("OTHER"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.want, platformerrors.ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}

func TestIsErrorType(t *testing.T) {
	err := platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, "busy", nil)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnavailable))
	assert.False(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInternal))
	assert.False(t, platformerrors.IsErrorType(errors.New("plain"), platformerrors.ErrorTypeInternal))
	assert.False(t, platformerrors.IsErrorType(nil, platformerrors.ErrorTypeInternal))
}
