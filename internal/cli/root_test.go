package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	// No log file so tests stay out of the home directory.
	cmd.SetArgs(append([]string{"--log-file", ""}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScoreCommandStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.json")

	out, err := runCommand(t, "score", "--storage", "file", "--score-file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "-- Captain: 0")
	assert.Contains(t, out, "-- Alien: 0")
}

func TestUnknownStrategyFails(t *testing.T) {
	_, err := runCommand(t, "score", "--storage", "memory", "--strategy", "psychic")
	assert.Error(t, err)
}

func TestUnknownStorageFails(t *testing.T) {
	_, err := runCommand(t, "score", "--storage", "cassette")
	assert.Error(t, err)
}
