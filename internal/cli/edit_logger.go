package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hookguard/internal/domain"
	"github.com/emiliopalmerini/hookguard/internal/editlog"
	"github.com/emiliopalmerini/hookguard/internal/hook"
	"github.com/emiliopalmerini/hookguard/internal/ports"
)

var editLoggerCmd = &cobra.Command{
	Use:   "edit-logger",
	Short: "Append edits to tracked files to the edit log",
	Long: `Reads a PostToolUse event from stdin and, when tool_input.file_path ends
with the tracked suffix (HOOKGUARD_EDIT_SUFFIX, default ".swift"), appends

  [YYYY-MM-DD HH:MM:SS] <tool_name>: <file_path>

to the edit log (HOOKGUARD_EDIT_LOG, default ~/.claude/localbus-edits.log).

Always exits 0; a logging failure never blocks the edit:

  {
    "hooks": {
      "PostToolUse": [
        {
          "matcher": "Edit|MultiEdit|Write",
          "hooks": [{"type": "command", "command": "hookguard edit-logger"}]
        }
      ]
    }
  }`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runEditLogger,
}

func runEditLogger(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	env, ok := newHookEnv(ctx, cmd.ErrOrStderr())
	if !ok {
		return nil
	}
	defer env.close()

	edits := editlog.New(env.cfg.EditLog, env.cfg.EditSuffix)
	outcome := hook.Run(ctx, cmd.InOrStdin(), func(ctx context.Context, event *domain.HookEvent) hook.Outcome {
		return recordEdit(ctx, event, edits, env.metrics)
	})

	if outcome.Err != nil {
		env.log.Debug(outcome.Err.Error())
	}
	return nil
}

func recordEdit(ctx context.Context, event *domain.HookEvent, edits *editlog.Logger, metrics ports.MetricsExporter) hook.Outcome {
	logged, err := edits.Record(event.ToolName, event.FilePath())
	if err != nil {
		return hook.FailOpen(fmt.Errorf("failed to record edit: %w", err))
	}
	if logged {
		_ = metrics.RecordEdit(ctx, event.ToolName)
	}
	return hook.Allow("")
}
