package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/hookguard/internal/ports"
)

const (
	serviceName    = "hookguard"
	serviceVersion = "1.0.0"
)

// Exporter exports hook metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	commitChecks metric.Int64Counter
	editRecords  metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	// Hooks are short-lived processes; metrics are pushed on Close.
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	commitChecks, err := meter.Int64Counter(
		"hookguard_commit_checks_total",
		metric.WithDescription("Commit messages checked by the validator"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commit checks counter: %w", err)
	}

	editRecords, err := meter.Int64Counter(
		"hookguard_edit_records_total",
		metric.WithDescription("Lines appended to the edit log"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating edit records counter: %w", err)
	}

	return &Exporter{
		provider:     provider,
		commitChecks: commitChecks,
		editRecords:  editRecords,
	}, nil
}

// RecordCommitCheck counts one validated commit message.
func (e *Exporter) RecordCommitCheck(ctx context.Context, c ports.CommitCheck) error {
	attrs := []attribute.KeyValue{attribute.String("verdict", c.Verdict)}
	if c.Rule != "" {
		attrs = append(attrs, attribute.String("rule", c.Rule))
	}
	e.commitChecks.Add(ctx, 1, metric.WithAttributes(attrs...))
	return nil
}

// RecordEdit counts one appended edit log line.
func (e *Exporter) RecordEdit(ctx context.Context, toolName string) error {
	e.editRecords.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", toolName)))
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
