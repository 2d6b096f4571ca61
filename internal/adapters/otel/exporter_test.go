package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/hookguard/internal/ports"
)

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %s is %T", name, m.Data)
				return sum
			}
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}

func TestNewExporter_Disabled(t *testing.T) {
	_, err := NewExporter(context.Background(), Config{Endpoint: "localhost:4317"})
	assert.Error(t, err)

	_, err = NewExporter(context.Background(), Config{Enabled: true})
	assert.Error(t, err)
}

func TestExporter_RecordCommitCheck(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	exp, err := newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)
	defer exp.Close(ctx)

	require.NoError(t, exp.RecordCommitCheck(ctx, ports.CommitCheck{Verdict: "block", Rule: "length"}))
	require.NoError(t, exp.RecordCommitCheck(ctx, ports.CommitCheck{Verdict: "block", Rule: "length"}))
	require.NoError(t, exp.RecordCommitCheck(ctx, ports.CommitCheck{Verdict: "allow"}))

	sum := collectSum(t, reader, "hookguard_commit_checks_total")
	require.Len(t, sum.DataPoints, 2)

	byVerdict := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("verdict"))
		byVerdict[v.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), byVerdict["block"])
	assert.Equal(t, int64(1), byVerdict["allow"])
}

func TestExporter_RecordEdit(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	exp, err := newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)
	defer exp.Close(ctx)

	require.NoError(t, exp.RecordEdit(ctx, "Edit"))

	sum := collectSum(t, reader, "hookguard_edit_records_total")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
	tool, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("tool"))
	require.True(t, ok)
	assert.Equal(t, "Edit", tool.AsString())
}

func TestNoOpExporter(t *testing.T) {
	var exp ports.MetricsExporter = NewNoOpExporter()
	ctx := context.Background()

	assert.NoError(t, exp.RecordCommitCheck(ctx, ports.CommitCheck{Verdict: "allow"}))
	assert.NoError(t, exp.RecordEdit(ctx, "Write"))
	assert.NoError(t, exp.Close(ctx))
}
