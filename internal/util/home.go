package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultEditLogPath returns ~/.claude/localbus-edits.log.
func DefaultEditLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".claude", "localbus-edits.log"), nil
}
