// Package hook maps hook evaluation results to the exit codes the harness
// understands. Only an explicit Block stops the tool call; every failure
// inside a hook is reported as FailOpen and allowed through.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/emiliopalmerini/hookguard/internal/domain"
)

// Exit codes read by Claude Code.
const (
	ExitAllow = 0
	ExitBlock = 2
)

// ErrMalformedInput is wrapped by outcomes whose stdin could not be decoded.
var ErrMalformedInput = errors.New("malformed hook input")

// Kind classifies an Outcome.
type Kind int

const (
	// KindAllow lets the tool call proceed.
	KindAllow Kind = iota
	// KindBlock stops the tool call.
	KindBlock
	// KindFailOpen means the hook could not decide; the call proceeds.
	KindFailOpen
)

func (k Kind) String() string {
	switch k {
	case KindAllow:
		return "allow"
	case KindBlock:
		return "block"
	case KindFailOpen:
		return "fail_open"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the single result of one hook invocation.
type Outcome struct {
	Kind   Kind
	Reason string
	Err    error
}

// Allow returns an allowing outcome with an optional message.
func Allow(reason string) Outcome {
	return Outcome{Kind: KindAllow, Reason: reason}
}

// Block returns a blocking outcome.
func Block(reason string) Outcome {
	return Outcome{Kind: KindBlock, Reason: reason}
}

// FailOpen wraps an internal failure.
func FailOpen(err error) Outcome {
	return Outcome{Kind: KindFailOpen, Err: err}
}

// ExitCode returns the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	if o.Kind == KindBlock {
		return ExitBlock
	}
	return ExitAllow
}

// Handler evaluates one decoded hook event.
type Handler func(ctx context.Context, event *domain.HookEvent) Outcome

// Run reads a hook event from r and passes it to fn. Read and decode
// errors, and panics in fn, become FailOpen outcomes.
func Run(ctx context.Context, r io.Reader, fn Handler) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = FailOpen(fmt.Errorf("hook panicked: %v", p))
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return FailOpen(fmt.Errorf("failed to read stdin: %w", err))
	}

	event, err := domain.ParseHookEvent(data)
	if err != nil {
		return FailOpen(fmt.Errorf("%w: %w", ErrMalformedInput, err))
	}

	return fn(ctx, event)
}
