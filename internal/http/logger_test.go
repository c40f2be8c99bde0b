package http

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errRefused = errors.New("connection refused")

func TestToFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{
			name:     "pairs",
			input:    []interface{}{"method", "GET", "attempt", 1},
			expected: map[string]interface{}{"method": "GET", "attempt": 1},
		},
		{
			name:     "odd trailing value",
			input:    []interface{}{"method", "GET", "dangling"},
			expected: map[string]interface{}{"method": "GET", "EXTRA_VALUE_AT_END": "dangling"},
		},
		{
			name:     "url string is redacted",
			input:    []interface{}{"url", "https://example.com/projects?token=secret"},
			expected: map[string]interface{}{"url": "https://example.com/projects?token=%2A%2A%2A"},
		},
		{
			name: "url error is redacted",
			input: []interface{}{"error", &url.Error{
				Op:  "Get",
				URL: "https://example.com/projects?token=secret",
				Err: errRefused,
			}},
			expected: map[string]interface{}{
				"error": "Get https://example.com/projects?token=%2A%2A%2A: connection refused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, toFields(tt.input))
		})
	}
}
