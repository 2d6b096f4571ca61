package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hookguard/internal/infrastructure/config"
	"github.com/emiliopalmerini/hookguard/internal/ports"
)

// recordingMetrics captures everything a hook reports.
type recordingMetrics struct {
	checks []ports.CommitCheck
	edits  []string
	closed bool
}

func (m *recordingMetrics) RecordCommitCheck(ctx context.Context, c ports.CommitCheck) error {
	m.checks = append(m.checks, c)
	return nil
}

func (m *recordingMetrics) RecordEdit(ctx context.Context, toolName string) error {
	m.edits = append(m.edits, toolName)
	return nil
}

func (m *recordingMetrics) Close(ctx context.Context) error {
	m.closed = true
	return nil
}

// useTestEnv points the hooks at a temp edit log and a recording exporter.
func useTestEnv(t *testing.T) (*config.Config, *recordingMetrics) {
	t.Helper()

	cfg := &config.Config{
		EditLog:    filepath.Join(t.TempDir(), ".claude", "edits.log"),
		EditSuffix: ".swift",
	}
	metrics := &recordingMetrics{}

	configOverride = cfg
	metricsOverride = metrics
	t.Cleanup(func() {
		configOverride = nil
		metricsOverride = nil
	})
	return cfg, metrics
}

type hookRun struct {
	stdout string
	stderr string
	err    error
}

// runWithInput runs a hook command with stdin set to input.
func runWithInput(t *testing.T, run func(*cobra.Command, []string) error, input string) hookRun {
	t.Helper()

	cmd := &cobra.Command{}
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := run(cmd, nil)
	return hookRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// bashEvent builds a PreToolUse payload for a Bash command.
func bashEvent(t *testing.T, command string) string {
	t.Helper()
	return mustJSON(t, map[string]any{
		"hook_event_name": "PreToolUse",
		"tool_name":       "Bash",
		"tool_input":      map[string]string{"command": command},
	})
}

// editEvent builds a PostToolUse payload for a file edit.
func editEvent(t *testing.T, toolName, filePath string) string {
	t.Helper()
	return mustJSON(t, map[string]any{
		"hook_event_name": "PostToolUse",
		"tool_name":       toolName,
		"tool_input":      map[string]string{"file_path": filePath},
	})
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

// exitCode mirrors what Execute does with a command error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return 1
}
