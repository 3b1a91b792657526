package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerIncludesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:          LogLevelInfo,
		Format:         LogFormatJSON,
		Output:         &buf,
		ServiceName:    "sangam",
		ServiceVersion: "1.2.3",
	})

	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"service":"sangam"`)
	assert.Contains(t, out, `"version":"1.2.3"`)
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelWarn,
		Format: LogFormatText,
		Output: &buf,
	})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should appear")
}

func TestLoggerAddsCorrelationIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelInfo,
		Format: LogFormatJSON,
		Output: &buf,
	})

	ctx := WithCorrelationID(context.Background(), "corr-42")
	ctx = WithUserID(ctx, "user-7")
	logger.InfoContext(ctx, "scoped")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"corr-42"`)
	assert.Contains(t, out, `"user_id":"user-7"`)
}

func TestWithCorrelationIDGeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	id := CorrelationIDFromContext(ctx)
	require.NotEmpty(t, id)
	assert.Len(t, strings.Split(id, "-"), 5)
}

func TestInMemoryMetricsCountersAndTimings(t *testing.T) {
	m := NewInMemoryMetrics()

	m.Counter(MetricCacheHits, 1, T("op", "schedule.list"))
	m.Counter(MetricCacheHits, 2, T("op", "schedule.list"))
	m.Timing(MetricOperationDuration, 15*time.Millisecond)
	m.Gauge("sangam.worker.queue_depth", 3)

	assert.Equal(t, int64(3), m.GetCounter(MetricCacheHits, T("op", "schedule.list")))
	assert.Equal(t, int64(0), m.GetCounter(MetricCacheHits, T("op", "journeys.list")))
	assert.Len(t, m.GetTimings(MetricOperationDuration), 1)
	assert.Equal(t, float64(3), m.GetGauge("sangam.worker.queue_depth"))
}

func TestTimerRecordsFailure(t *testing.T) {
	m := NewInMemoryMetrics()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	timer := StartTimer("schedule.create", logger, m)
	timer.Stop(context.Background(), assert.AnError)

	assert.Equal(t, int64(1), m.GetCounter(MetricOperationTotal, T(OperationKey, "schedule.create")))
	assert.Equal(t, int64(1), m.GetCounter(MetricOperationErrors, T(OperationKey, "schedule.create")))
}

func TestHealthRegistryAggregatesStatus(t *testing.T) {
	reg := NewHealthRegistry()
	reg.Register("store", func(ctx context.Context) HealthResult {
		return HealthResult{Status: HealthStatusUp}
	})
	reg.Register("cache", func(ctx context.Context) HealthResult {
		return HealthResult{Status: HealthStatusDegraded, Message: "slow"}
	})

	overall, results := reg.RunAll(context.Background())
	assert.Equal(t, HealthStatusDegraded, overall)
	require.Len(t, results, 2)
	assert.Equal(t, "slow", results["cache"].Message)

	reg.Register("bus", func(ctx context.Context) HealthResult {
		return HealthResult{Status: HealthStatusDown}
	})
	overall, _ = reg.RunAll(context.Background())
	assert.Equal(t, HealthStatusDown, overall)
}
