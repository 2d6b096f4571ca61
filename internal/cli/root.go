package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hookguard",
	Short: "Commit convention and edit audit hooks for Claude Code",
	Long: `hookguard bundles the Claude Code hooks used by the LocalBus project.

commit-validator blocks git commits whose message does not follow the
"[Type]: Message" convention. edit-logger appends every edit to a tracked
file type to an audit log.`,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ExecuteHook runs a single hook subcommand, for the standalone binaries.
func ExecuteHook(name string) {
	rootCmd.SetArgs(append([]string{name}, os.Args[1:]...))
	Execute()
}

func init() {
	rootCmd.AddCommand(commitValidatorCmd)
	rootCmd.AddCommand(editLoggerCmd)
}
