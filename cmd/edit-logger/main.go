// Command edit-logger is the edit audit hook as a standalone binary.
package main

import "github.com/emiliopalmerini/hookguard/internal/cli"

func main() {
	cli.ExecuteHook("edit-logger")
}
