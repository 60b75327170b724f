//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrUsage, ErrValidation)
	assert.NotEqual(t, ErrUsage, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "not found",
		Message:  "output directory not found",
		Location: "/home/user/Desktop",
		Hint:     "Pass --output to choose another directory",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: not found")
	assert.Contains(t, output, "Location: /home/user/Desktop")
	assert.Contains(t, output, "output directory not found")
	assert.Contains(t, output, "Hint: Pass --output")
}

func TestDetailErrorOmitsEmptyFields(t *testing.T) {
	detail := &DetailError{Type: "validation failed", Message: "bad layout"}

	output := detail.Error()

	assert.NotContains(t, output, "Location:")
	assert.NotContains(t, output, "Hint:")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrNotFound,
	}

	assert.True(t, errors.Is(detail, ErrNotFound))
	assert.Equal(t, ErrNotFound, detail.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("output directory not found", "/nope", "create it first")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "not found", detail.Type)
	assert.Equal(t, "/nope", detail.Location)
	assert.Equal(t, "create it first", detail.Hint)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid date layout", "config.yaml", "")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	exitErr := &ExitError{Err: inner, Code: ExitNotFound}

	assert.Equal(t, "boom", exitErr.Error())
	assert.True(t, errors.Is(exitErr, inner))
	assert.Equal(t, "", (&ExitError{Code: ExitGeneralError}).Error())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "exit error code wins", err: &ExitError{Err: ErrNotFound, Code: ExitGeneralError}, wantCode: ExitGeneralError},
		{name: "not found", err: NewNotFoundError("missing", "", ""), wantCode: ExitNotFound},
		{name: "validation", err: NewValidationError("bad layout", "dateFormat.long", ""), wantCode: ExitValidationError},
		{name: "wrapped validation", err: fmt.Errorf("loading config: %w", ErrValidation), wantCode: ExitValidationError},
		{name: "fs permission", err: fmt.Errorf("writing HomeWireframe.swift: %w", fs.ErrPermission), wantCode: ExitPermissionDenied},
		{name: "unknown error", err: errors.New("disk full"), wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 4, ExitPermissionDenied)
	assert.Equal(t, 5, ExitNotFound)
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
