package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withoutDatabaseURL returns an environment with DATABASE_URL unset so the
// commands cannot pick up a live connection from the test host.
func withoutDatabaseURL() []string {
	return []string{"PATH=/usr/bin:/bin"}
}

func TestRunsCommand_RequiresDatabaseURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "runs")
	cmd.Env = withoutDatabaseURL()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail without a database URL")
	assert.Contains(t, string(output), "database URL is required")
}

func TestFetchCommand_RequiresDatabaseURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "fetch", "--run", "00000000-0000-0000-0000-000000000000")
	cmd.Env = withoutDatabaseURL()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail without a database URL")
	assert.Contains(t, string(output), "database URL is required")
}

func TestFetchCommand_InvalidRunID(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "fetch", "--run", "not-a-uuid", "--db-url", "postgres://localhost/ignored")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should reject a malformed run ID")
	assert.Contains(t, string(output), "invalid run ID")
}
