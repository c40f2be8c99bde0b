package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pairs    []string
		expected map[string]interface{}
	}{
		{
			name:     "empty",
			pairs:    nil,
			expected: map[string]interface{}{},
		},
		{
			name:  "keys become lower camel case",
			pairs: []string{"use-tm=true", "purchase_order=PO-17", "WorkflowStep=2"},
			expected: map[string]interface{}{
				"useTm":         true,
				"purchaseOrder": "PO-17",
				"workflowStep":  2,
			},
		},
		{
			name:     "value keeps further equals signs",
			pairs:    []string{"note=a=b"},
			expected: map[string]interface{}{"note": "a=b"},
		},
		{
			name:     "empty value stays a string",
			pairs:    []string{"note="},
			expected: map[string]interface{}{"note": ""},
		},
		{
			name:     "lists",
			pairs:    []string{"workflow-steps=[1, 2]"},
			expected: map[string]interface{}{"workflowSteps": []interface{}{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			options, err := parseOptions(tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, options)
		})
	}
}

func TestParseOptions_Invalid(t *testing.T) {
	t.Parallel()

	for _, pair := range []string{"novalue", "=value", " =value"} {
		_, err := parseOptions([]string{pair})
		require.ErrorIs(t, err, constants.ErrInvalidOptionValue, pair)
	}
}

func TestParseDeadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"2030-01-02T10:00:00+02:00", "2030-01-02T08:00:00Z"},
		{"2030-01-02T08:00:00Z", "2030-01-02T08:00:00Z"},
		{"2030-01-02 08:00:00 +0000 UTC", "2030-01-02T08:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			deadline, err := parseDeadline(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deadline)
		})
	}

	_, err := parseDeadline("not a date")
	require.Error(t, err)
}

func TestDisplayStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New", displayStatus("NEW"))
	assert.Equal(t, "Assigned To Linguist", displayStatus("ASSIGNED_TO_LINGUIST"))
	assert.Equal(t, constants.NotAvailable, displayStatus(""))
	assert.Equal(t, constants.NotAvailable, displayValue(""))
	assert.Equal(t, "x", displayValue("x"))
}

func TestListOptions(t *testing.T) {
	t.Parallel()

	options, err := listOptions(2, 20, map[string]string{"name": "Demo", "empty": ""})
	require.NoError(t, err)
	assert.Equal(t, "2", options.ToValues().Get("pageNumber"))
	assert.Equal(t, "20", options.ToValues().Get("pageSize"))
	assert.Equal(t, "Demo", options.ToValues().Get("name"))
	assert.False(t, options.ToValues().Has("empty"))

	_, err = listOptions(-1, 20, nil)
	require.Error(t, err)

	_, err = listOptions(0, 0, nil)
	require.Error(t, err)

	_, err = listOptions(0, constants.MaxPageSize+1, nil)
	require.Error(t, err)
}

func TestFilterLanguages(t *testing.T) {
	t.Parallel()

	languages := []memsource.Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish"},
		{Code: "de", Name: "German"},
	}

	assert.Len(t, filterLanguages(languages, ""), 3)
	assert.Equal(t, []memsource.Language{{Code: "es", Name: "Spanish"}}, filterLanguages(languages, "span"))
	assert.Len(t, filterLanguages(languages, "E"), 3)
	assert.Empty(t, filterLanguages(languages, "fr"))
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, "endpoint", "example.com/web/api2/v1"))
	assert.Equal(t, "https://example.com/web/api2/v1/", config.Endpoint)

	require.NoError(t, setConfigValue(config, "output", "yaml"))
	assert.Equal(t, "yaml", config.Output)

	require.ErrorIs(t, setConfigValue(config, "output", "xml"), constants.ErrInvalidOutput)
	require.ErrorIs(t, setConfigValue(config, "token", "abc"), constants.ErrTokenCannotBeSet)
	require.ErrorIs(t, setConfigValue(config, "color", "red"), constants.ErrUnknownConfigKey)

	config.Token = "abc"
	config.TokenExpires = "soon"
	require.NoError(t, unsetConfigValue(config, "token"))
	assert.Empty(t, config.Token)
	assert.Empty(t, config.TokenExpires)
}
