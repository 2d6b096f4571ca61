package commitlint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emiliopalmerini/hookguard/internal/domain"
)

// MaxSummaryLength is the longest summary allowed after "[Type]: ".
const MaxSummaryLength = 50

// ValidTypes are the accepted title prefixes, in the order shown to users.
var ValidTypes = []string{
	"[Feat]",
	"[Fix]",
	"[Refactor]",
	"[Design]",
	"[Test]",
	"[Docs]",
	"[Chore]",
	"[Add]",
	"[Del]",
	"[Remove]",
	"[Comment]",
	"[Setting]",
	"[Merge]",
	"[Perf]",
}

var titleRe = regexp.MustCompile(`^\[\w+\]:\s*(.+)`)

// Candidate is a commit message prepared for rule evaluation.
type Candidate struct {
	Message domain.CommitMessage
	Title   string
	// Summary is the text after "[Type]:"; empty when the title doesn't
	// match the expected shape.
	Summary string
	shaped  bool
}

// NewCandidate splits msg into the parts the rules look at.
func NewCandidate(msg string) *Candidate {
	c := &Candidate{Message: domain.CommitMessage(msg)}
	c.Title = c.Message.Title()
	if m := titleRe.FindStringSubmatch(c.Title); m != nil {
		c.Summary = m[1]
		c.shaped = true
	}
	return c
}

// Rule is a single named check. Check returns ok=false and a reason when
// the candidate violates the rule.
type Rule struct {
	Name  string
	Check func(c *Candidate) (reason string, ok bool)
}

var rules = []Rule{
	{Name: "empty", Check: checkEmpty},
	{Name: "type", Check: checkType},
	{Name: "colon", Check: checkColon},
	{Name: "format", Check: checkFormat},
	{Name: "length", Check: checkLength},
	{Name: "period", Check: checkPeriod},
	{Name: "capital", Check: checkCapital},
}

// Rules returns the rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func checkEmpty(c *Candidate) (string, bool) {
	if c.Message.IsBlank() {
		return "Commit message is empty", false
	}
	return "", true
}

func checkType(c *Candidate) (string, bool) {
	for _, t := range ValidTypes {
		if strings.HasPrefix(c.Title, t) {
			return "", true
		}
	}
	return fmt.Sprintf("Commit title must start with a valid type: %s...", strings.Join(ValidTypes[:5], ", ")), false
}

func checkColon(c *Candidate) (string, bool) {
	if !strings.Contains(c.Title, "]:") {
		return "Missing colon after type. Format: [Type]: message", false
	}
	return "", true
}

func checkFormat(c *Candidate) (string, bool) {
	if !c.shaped {
		return "Invalid format. Expected: [Type]: message", false
	}
	return "", true
}

func checkLength(c *Candidate) (string, bool) {
	if n := utf8.RuneCountInString(c.Summary); n > MaxSummaryLength {
		return fmt.Sprintf("Commit message too long (%d chars). Max %d chars.", n, MaxSummaryLength), false
	}
	return "", true
}

func checkPeriod(c *Candidate) (string, bool) {
	if strings.HasSuffix(c.Summary, ".") {
		return "Commit message should not end with a period", false
	}
	return "", true
}

func checkCapital(c *Candidate) (string, bool) {
	r, _ := utf8.DecodeRuneInString(c.Summary)
	if unicode.IsLower(r) {
		return "Commit message should start with a capital letter (imperative mood)", false
	}
	return "", true
}
