package logger

import (
	"fmt"
	"io"

	"github.com/emiliopalmerini/hookguard/internal/pkg/theme"
)

// WriterLogger writes hook diagnostics to a stream, normally stderr.
// Debug output is dropped unless debug is enabled.
type WriterLogger struct {
	w     io.Writer
	debug bool
	style *theme.Styles
}

// New creates a logger writing to w.
func New(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{w: w, debug: debug, style: theme.For(w)}
}

func (l *WriterLogger) Debug(message string) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.w, "debug: %s\n", message)
}

func (l *WriterLogger) Error(message string) {
	fmt.Fprintln(l.w, l.style.Warning.Render("warning: "+message))
}
