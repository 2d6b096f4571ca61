package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HookSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "commit-validator")
	assert.Contains(t, names, "edit-logger")
}

func TestRootCmd_BlockedCommitReturnsExitError(t *testing.T) {
	useTestEnv(t)

	var stderr bytes.Buffer
	rootCmd.SetArgs([]string{"commit-validator"})
	rootCmd.SetIn(strings.NewReader(bashEvent(t, `git commit -m "nope"`)))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()

	var exit *exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.code)
	assert.Equal(t, "exit status 2", exit.Error())
	assert.Contains(t, stderr.String(), "must start with a valid type")
	assert.NotContains(t, stderr.String(), "Usage:")
}
