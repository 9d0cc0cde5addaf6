package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorFieldMap(t *testing.T) {
	err := NewValidationError(errors.New("validation failed"),
		FieldError{Field: "amount", Error: "must be at least 0.01"},
		FieldError{Field: "student_id", Error: "student not found"},
	)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"amount":     "must be at least 0.01",
		"student_id": "student not found",
	}, ve.FieldMap())
}

func TestValidationErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("recording payment: %w", NewValidationError(cause))

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.ErrorIs(t, ve, cause)

	_, ok = AsConflictError(err)
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := fmt.Errorf("outer: %w", &ConflictError{Err: errors.New("receipt collision")})

	ce, ok := AsConflictError(err)
	require.True(t, ok)
	assert.Contains(t, ce.Error(), "receipt collision")

	_, ok = AsValidationError(err)
	assert.False(t, ok)
}
