package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("brand", 42)

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "brand with id 42")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConflict_MapsTo400(t *testing.T) {
	err := Conflict("brand with this name already exists")

	assert.Equal(t, "CONFLICT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("name is required")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPersistence_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_ErrorString(t *testing.T) {
	withCause := &AppError{Code: "X", Message: "boom", Err: errors.New("root")}
	assert.Equal(t, "X: boom: root", withCause.Error())

	withoutCause := &AppError{Code: "X", Message: "boom"}
	assert.Equal(t, "X: boom", withoutCause.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", NotFound("brand", 1), http.StatusNotFound},
		{"wrapped not found sentinel", fmt.Errorf("get: %w", ErrNotFound), http.StatusNotFound},
		{"wrapped conflict sentinel", fmt.Errorf("create: %w", ErrConflict), http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("parse: %w", ErrInvalidInput), http.StatusBadRequest},
		{"persistence sentinel", fmt.Errorf("exec: %w", ErrPersistence), http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
