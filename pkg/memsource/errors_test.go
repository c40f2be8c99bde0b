package memsource_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

var errDial = errors.New("dial tcp: connection refused")

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *memsource.Error
		expected string
	}{
		{
			name:     "description",
			err:      &memsource.Error{StatusCode: 404, Description: "Project not found"},
			expected: "Project not found",
		},
		{
			name:     "wrapped cause",
			err:      &memsource.Error{Err: errDial},
			expected: "dial tcp: connection refused",
		},
		{
			name:     "status only",
			err:      &memsource.Error{StatusCode: 503},
			expected: "request failed with status 503",
		},
		{
			name:     "empty",
			err:      &memsource.Error{},
			expected: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errorCode":"ResourceNotFound","errorDescription":"Project not found"}`)

		apiErr := memsource.ParseError(404, body)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "ResourceNotFound", apiErr.Code)
		assert.Equal(t, "Project not found", apiErr.Error())
		assert.Equal(t, body, apiErr.Body)
		assert.NoError(t, apiErr.Unwrap())
	})

	t.Run("non-json body", func(t *testing.T) {
		t.Parallel()

		apiErr := memsource.ParseError(500, []byte("Internal Server Error"))
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Empty(t, apiErr.Code)
		assert.Contains(t, apiErr.Error(), "failed to parse error response (status 500)")
		require.ErrorIs(t, apiErr, memsource.ErrUnparseableError)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		apiErr := memsource.ParseError(502, nil)
		require.ErrorIs(t, apiErr, memsource.ErrUnparseableError)
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		unauthorized bool
		forbidden    bool
		notFound     bool
	}{
		{name: "401", err: &memsource.Error{StatusCode: 401}, unauthorized: true},
		{name: "invalid credentials code", err: &memsource.Error{StatusCode: 400, Code: memsource.ErrorCodeAuthInvalidCredentials}, unauthorized: true},
		{name: "403", err: &memsource.Error{StatusCode: 403}, forbidden: true},
		{name: "404", err: &memsource.Error{StatusCode: 404}, notFound: true},
		{name: "not found code", err: &memsource.Error{StatusCode: 400, Code: memsource.ErrorCodeResourceNotFound}, notFound: true},
		{name: "wrapped 404", err: fmt.Errorf("getting project: %w", &memsource.Error{StatusCode: 404}), notFound: true},
		{name: "plain error", err: errDial},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.unauthorized, memsource.IsUnauthorized(tt.err))
			assert.Equal(t, tt.forbidden, memsource.IsForbidden(tt.err))
			assert.Equal(t, tt.notFound, memsource.IsNotFound(tt.err))
		})
	}
}

func TestErrorDescription(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("creating project: %w", &memsource.Error{Description: "Invalid source language"})

	assert.Equal(t, "Invalid source language", memsource.ErrorDescription(wrapped))
	assert.Equal(t, errDial.Error(), memsource.ErrorDescription(errDial))
	assert.Empty(t, memsource.ErrorDescription(nil))
}
