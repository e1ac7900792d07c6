package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/internal/observability"
)

func TestInitMetrics_NoEndpoint(t *testing.T) {
	cfg := observability.MetricsConfig{
		ServiceName:    "test-service",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		OTLPEndpoint:   "",
	}

	mp, err := observability.InitMetrics(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, mp)
}

func TestMetricsProvider_ShutdownNilProvider(t *testing.T) {
	mp := &observability.MetricsProvider{}

	err := mp.Shutdown(context.Background())

	assert.NoError(t, err)
}

func TestMetricsProvider_Shutdown(t *testing.T) {
	cfg := observability.MetricsConfig{
		ServiceName:    "test-service",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		OTLPEndpoint:   "",
	}

	mp, err := observability.InitMetrics(context.Background(), cfg)
	require.NoError(t, err)

	err = mp.Shutdown(context.Background())

	assert.NoError(t, err)
}

func TestNewBenchMetrics(t *testing.T) {
	bm, err := observability.NewBenchMetrics(observability.Meter("test"))

	require.NoError(t, err)
	require.NotNil(t, bm)
	assert.NotNil(t, bm.ScheduleNsPerOp)
	assert.NotNil(t, bm.CheckNsPerOp)
	assert.NotNil(t, bm.EventsFired)

	// Recording against a no-op provider must not panic.
	bm.ScheduleNsPerOp.Record(context.Background(), 125)
	bm.CheckNsPerOp.Record(context.Background(), 40)
	bm.EventsFired.Add(context.Background(), 1000)
}
