package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Zachkp/folio/internal/config"
)

func TestNewReturnsNoopWhenDisabled(t *testing.T) {
	for _, cfg := range []config.OTel{{}, {Enabled: true}, {Endpoint: "localhost:4317"}} {
		r, err := New(context.Background(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &Noop{}, r)
		assert.NoError(t, r.Close(context.Background()))
	}
}

func TestNewExporterRejectsDisabled(t *testing.T) {
	_, err := NewExporter(context.Background(), config.OTel{})
	assert.Error(t, err)
}

func TestExporterRecords(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	e, err := newExporter(ctx, reader)
	require.NoError(t, err)

	e.RequestServed(ctx, "/projects", 200, 30*time.Millisecond)
	e.RequestServed(ctx, "/projects", 200, 10*time.Millisecond)
	e.RequestServed(ctx, "/timeline", 400, time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	sum, ok := byName["folio_http_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
	assert.Len(t, sum.DataPoints, 2, "one series per route and status")

	hist, ok := byName["folio_http_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	assert.Equal(t, uint64(3), count)

	assert.NoError(t, e.Close(ctx))
}
