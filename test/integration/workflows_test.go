//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_ProjectWithJobs logs in, creates a project and uploads a file
// into it through the CLI.
func TestWorkflow_ProjectWithJobs(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	require.NoError(t, runner.Login())

	stdout, stderr, err := runner.Run("whoami", "--output", "json")
	require.NoError(t, err, "whoami failed: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, config.Username)

	projectName := GenerateTestName("integration-project")

	stdout, stderr, err = runner.Run("projects", "create", projectName,
		"--source", "en", "--target", "es", "--output", "json")
	require.NoError(t, err, "Failed to create project: %s", stderr)

	var project struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &project))
	assert.Equal(t, projectName, project.Name)

	file := filepath.Join(t.TempDir(), "greeting.txt")
	require.NoError(t, os.WriteFile(file, []byte("Hello, world"), 0o600))

	stdout, stderr, err = runner.Run("jobs", "create", project.ID, file, "--target", "es", "--output", "json")
	require.NoError(t, err, "Failed to upload: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, "greeting.txt")

	stdout, stderr, err = runner.Run("jobs", "list", project.ID, "--output", "json")
	require.NoError(t, err, "Failed to list jobs: %s", stderr)
	assert.Contains(t, stdout, "greeting.txt")
}

// TestWorkflow_LogoutForgetsToken checks commands fail after logout.
func TestWorkflow_LogoutForgetsToken(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	require.NoError(t, runner.Login())

	_, stderr, err := runner.Run("logout")
	require.NoError(t, err, "logout failed: %s", stderr)

	_, stderr, err = runner.Run("projects", "list")
	require.Error(t, err)
	assert.Contains(t, stderr, "not logged in")
}

// TestWorkflow_Languages checks the read-only language listing.
func TestWorkflow_Languages(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	require.NoError(t, runner.Login())

	stdout, stderr, err := runner.Run("languages", "list", "--search", "english", "--output", "yaml")
	require.NoError(t, err, "Failed to list languages: %s", stderr)
	assert.Contains(t, stdout, "code: en")
}
