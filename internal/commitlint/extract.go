package commitlint

import (
	"regexp"
	"strings"
)

var (
	// Only the literal EOF delimiter is recognised. Any other heredoc
	// delimiter is left unparsed so the hook fails open.
	heredocRe = regexp.MustCompile(`-m\s+"\$\(cat <<['"]?EOF['"]?\n((?s:.+?))\nEOF`)
	inlineRe  = regexp.MustCompile(`-m\s+(["'])`)
)

// IsCommitCommand reports whether a shell command invokes git commit.
func IsCommitCommand(cmd string) bool {
	return strings.Contains(cmd, "git commit")
}

// ExtractMessage pulls the commit message out of a git commit command line.
// It understands a heredoc passed through command substitution and a quoted
// -m argument. ok is false when neither form is present.
func ExtractMessage(cmd string) (msg string, ok bool) {
	if m := heredocRe.FindStringSubmatch(cmd); m != nil {
		return m[1], true
	}

	for _, loc := range inlineRe.FindAllStringSubmatchIndex(cmd, -1) {
		quote := cmd[loc[2]]
		body, closed := scanQuoted(cmd[loc[3]:], quote)
		if !closed {
			continue
		}
		if quote == '"' && strings.HasPrefix(body, "$(") {
			// Command substitution we don't understand (e.g. a heredoc
			// with a different delimiter).
			continue
		}
		return body, true
	}
	return "", false
}

// scanQuoted returns the text up to the closing quote. Inside double quotes
// a backslash escapes the characters the shell treats specially there.
func scanQuoted(s string, quote byte) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == quote:
			return b.String(), true
		case quote == '"' && c == '\\' && i+1 < len(s) && strings.IndexByte("\"\\$`", s[i+1]) >= 0:
			i++
			b.WriteByte(s[i])
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}
