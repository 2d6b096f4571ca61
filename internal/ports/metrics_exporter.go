package ports

import "context"

// MetricsExporter exports hook activity to an external observability system.
type MetricsExporter interface {
	// RecordCommitCheck counts one validated commit message.
	RecordCommitCheck(ctx context.Context, c CommitCheck) error
	// RecordEdit counts one line appended to the edit log.
	RecordEdit(ctx context.Context, toolName string) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// CommitCheck describes the verdict for one commit message.
type CommitCheck struct {
	// Verdict is "allow" or "block".
	Verdict string
	// Rule is the rejecting rule, empty for accepted messages.
	Rule string
}
