//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Endpoint     string
	Username     string
	Password     string
	MemsourceBin string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:     os.Getenv("MEMSOURCE_TEST_ENDPOINT"),
		Username:     os.Getenv("MEMSOURCE_TEST_USERNAME"),
		Password:     os.Getenv("MEMSOURCE_TEST_PASSWORD"),
		MemsourceBin: getMemsourcePath(),
		Verbose:      os.Getenv("MEMSOURCE_TEST_VERBOSE") == "true",
	}
}

// getMemsourcePath determines the path to the memsource binary.
func getMemsourcePath() string {
	if path := os.Getenv("MEMSOURCE_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../memsource",
		"./memsource",
		"../memsource",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "memsource"
}

// SkipIfMissingConfig skips the test unless credentials and a binary are available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Username == "" || config.Password == "" {
		t.Skip("MEMSOURCE_TEST_USERNAME or MEMSOURCE_TEST_PASSWORD not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.MemsourceBin); err != nil {
		t.Skipf("memsource binary not found at %s, skipping integration test", config.MemsourceBin)
	}
}

// CommandRunner runs the memsource binary against a private config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a memsource command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)
	if runner.config.Endpoint != "" {
		args = append(args, "--endpoint", runner.config.Endpoint)
	}

	cmd := exec.Command(runner.config.MemsourceBin, args...) //nolint:gosec // test binary path comes from the environment

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.MemsourceBin, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login stores a token in the runner's config file.
func (runner *CommandRunner) Login() error {
	_, stderr, err := runner.Run("login",
		"--username", runner.config.Username,
		"--password", runner.config.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %s", stderr) //nolint:err113 // test helper
	}

	return nil
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
