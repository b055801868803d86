package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ValidationError{Fields: []string{"patient_email is required"}}, http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "Pet", ID: "p1"}, http.StatusNotFound},
		{"config", &ConfigError{Missing: []string{"MONGO_URI"}}, http.StatusInternalServerError},
		{"store", &StoreError{Op: "get", Err: errors.New("timeout")}, http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestConfigErrorNamesKeysOnly(t *testing.T) {
	err := &ConfigError{Missing: []string{"BLOB_ACCESS_KEY", "BLOB_SECRET_KEY"}}
	assert.Contains(t, err.Error(), "BLOB_ACCESS_KEY")
	assert.True(t, IsConfigError(err))
}

func TestStoreErrorUnwraps(t *testing.T) {
	inner := errors.New("connection refused")
	err := &StoreError{Op: "list", Err: inner}
	assert.ErrorIs(t, err, inner)
}

func TestNotFoundDetection(t *testing.T) {
	assert.True(t, IsNotFound(&NotFoundError{Resource: "Appointment", ID: "a1"}))
	assert.False(t, IsNotFound(errors.New("other")))
}
