package otel

import (
	"context"

	"github.com/emiliopalmerini/hookguard/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordCommitCheck(ctx context.Context, c ports.CommitCheck) error {
	return nil
}

func (e *NoOpExporter) RecordEdit(ctx context.Context, toolName string) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
