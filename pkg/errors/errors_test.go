package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			err:      New(CodeInvalidData, "mass must be non-negative"),
			expected: "[INVALID_DATA] mass must be non-negative",
		},
		{
			name:     "with underlying error",
			err:      Wrap(CodeConfigError, "failed to load config", errors.New("file not found")),
			expected: "[CONFIG_ERROR] failed to load config: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Wrap(CodeInvalidArgument, "bad argument", underlying)

	assert.Equal(t, underlying, err.Unwrap())
}

func TestAppError_Is(t *testing.T) {
	err1 := New(CodeInvalidData, "error 1")
	err2 := New(CodeInvalidData, "error 2")
	err3 := New(CodeInvalidArgument, "error 3")

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestIsInvalidData(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "invalid data error",
			err:      ErrInvalidData,
			expected: true,
		},
		{
			name:     "wrapped invalid data error",
			err:      Wrap(CodeInvalidData, "descendant mass below progenitor", errors.New("violates monotonicity")),
			expected: true,
		},
		{
			name:     "other error",
			err:      ErrInvalidArgument,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInvalidData(tt.err))
		})
	}
}

func TestIsInvalidArgument(t *testing.T) {
	assert.True(t, IsInvalidArgument(ErrInvalidArgument))
	assert.False(t, IsInvalidArgument(ErrInvalidData))
}

func TestIsSubhaloNotFound(t *testing.T) {
	assert.True(t, IsSubhaloNotFound(ErrSubhaloNotFound))
	assert.False(t, IsSubhaloNotFound(ErrInvalidData))
}

func TestSubhaloNotFoundError(t *testing.T) {
	err := NewSubhaloNotFoundError(42)

	assert.Equal(t, int64(42), err.DescendantID)
	assert.Equal(t, CodeSubhaloNotFound, err.Code)
	assert.True(t, IsSubhaloNotFound(err))
	assert.Contains(t, err.Error(), "42")
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "app error",
			err:      New(CodeInvalidData, "bad data"),
			expected: CodeInvalidData,
		},
		{
			name:     "wrapped app error",
			err:      Wrap(CodeInvalidArgument, "bad arg", errors.New("inner")),
			expected: CodeInvalidArgument,
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: CodeUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "app error",
			err:      New(CodeInvalidData, "invalid data"),
			expected: "invalid data",
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: "standard error",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorMessage(tt.err))
		})
	}
}
