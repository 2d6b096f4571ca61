package main

import "github.com/emiliopalmerini/hookguard/internal/cli"

func main() {
	cli.Execute()
}
