// Package commitlint checks commit messages against the project's
// "[Type]: Message" convention.
package commitlint

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/hookguard/internal/domain"
)

const validReason = "Valid commit message"

// Validate runs the rules in order and stops at the first failure.
func Validate(msg string) domain.ValidationResult {
	c := NewCandidate(msg)
	for _, r := range rules {
		if reason, ok := r.Check(c); !ok {
			return domain.Rejected(r.Name, reason)
		}
	}
	return domain.Accepted(validReason)
}

// Usage is the hint shown after a rejection.
func Usage() string {
	var b strings.Builder
	b.WriteString("📝 Expected format:\n")
	b.WriteString("   [Type]: Message (50 chars max, no period)\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "   Valid types: %s", strings.Join(ValidTypes[:7], ", "))
	return b.String()
}
