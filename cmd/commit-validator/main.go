// Command commit-validator is the commit convention hook as a standalone binary.
package main

import "github.com/emiliopalmerini/hookguard/internal/cli"

func main() {
	cli.ExecuteHook("commit-validator")
}
