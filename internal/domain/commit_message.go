package domain

import "strings"

// CommitMessage is a proposed commit message as written on the command line.
type CommitMessage string

// Title returns the first line of the trimmed message.
func (m CommitMessage) Title() string {
	lines := strings.Split(strings.TrimSpace(string(m)), "\n")
	return strings.TrimSpace(lines[0])
}

// Body returns everything after the title line, or "" for single-line messages.
func (m CommitMessage) Body() string {
	_, body, found := strings.Cut(strings.TrimSpace(string(m)), "\n")
	if !found {
		return ""
	}
	return body
}

// IsBlank reports whether the message is empty or whitespace only.
func (m CommitMessage) IsBlank() bool {
	return strings.TrimSpace(string(m)) == ""
}

// ValidationResult is the verdict for a single commit message.
type ValidationResult struct {
	Valid  bool
	Reason string
	// Rule names the rule that rejected the message; empty when valid.
	Rule string
}

// Accepted returns a passing result.
func Accepted(reason string) ValidationResult {
	return ValidationResult{Valid: true, Reason: reason}
}

// Rejected returns a failing result attributed to rule.
func Rejected(rule, reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason, Rule: rule}
}
