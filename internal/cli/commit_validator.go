package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hookguard/internal/commitlint"
	"github.com/emiliopalmerini/hookguard/internal/domain"
	"github.com/emiliopalmerini/hookguard/internal/hook"
	"github.com/emiliopalmerini/hookguard/internal/pkg/theme"
	"github.com/emiliopalmerini/hookguard/internal/ports"
)

var commitValidatorCmd = &cobra.Command{
	Use:   "commit-validator",
	Short: "Block git commits that break the commit convention",
	Long: `Reads a PreToolUse event from stdin and validates the message of any
"git commit" command against the "[Type]: Message" convention.

Exits 2 to block the commit when the message is invalid. Everything else,
including unreadable input or commits without an inline message, exits 0:

  {
    "hooks": {
      "PreToolUse": [
        {
          "matcher": "Bash",
          "hooks": [{"type": "command", "command": "hookguard commit-validator"}]
        }
      ]
    }
  }`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCommitValidator,
}

func runCommitValidator(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	env, ok := newHookEnv(ctx, stderr)
	if !ok {
		return nil
	}
	defer env.close()

	outcome := hook.Run(ctx, cmd.InOrStdin(), func(ctx context.Context, event *domain.HookEvent) hook.Outcome {
		return checkCommit(ctx, event, env.metrics)
	})

	reportCommitOutcome(stdout, stderr, outcome, env.log)
	return exitFor(outcome)
}

// checkCommit validates the commit message carried by a Bash tool call.
func checkCommit(ctx context.Context, event *domain.HookEvent, metrics ports.MetricsExporter) hook.Outcome {
	command := event.Command()
	if !commitlint.IsCommitCommand(command) {
		return hook.Allow("")
	}

	msg, ok := commitlint.ExtractMessage(command)
	if !ok {
		return hook.Allow("")
	}

	result := commitlint.Validate(msg)
	check := ports.CommitCheck{Verdict: hook.KindAllow.String(), Rule: result.Rule}
	if !result.Valid {
		check.Verdict = hook.KindBlock.String()
	}
	_ = metrics.RecordCommitCheck(ctx, check)

	if !result.Valid {
		return hook.Block(result.Reason)
	}
	return hook.Allow(result.Reason)
}

func reportCommitOutcome(stdout, stderr io.Writer, o hook.Outcome, log ports.Logger) {
	switch o.Kind {
	case hook.KindBlock:
		st := theme.For(stderr)
		fmt.Fprintln(stderr, st.Error.Render("❌ Commit Convention Error: "+o.Reason))
		fmt.Fprintln(stderr)
		for _, line := range strings.Split(commitlint.Usage(), "\n") {
			fmt.Fprintln(stderr, st.Hint.Render(line))
		}
	case hook.KindAllow:
		if o.Reason != "" {
			fmt.Fprintln(stdout, theme.For(stdout).Success.Render("✅ Commit message follows conventions"))
		}
	case hook.KindFailOpen:
		if errors.Is(o.Err, hook.ErrMalformedInput) {
			log.Debug(o.Err.Error())
			return
		}
		fmt.Fprintf(stderr, "Hook error: %v\n", o.Err)
	}
}
