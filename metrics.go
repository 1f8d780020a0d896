package genconn

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/qbixus/genconn-go"

type shimMetrics struct {
	completions  metric.Int64Counter
	redeliveries metric.Int64Counter
	workDuration metric.Int64Histogram
	resource     attribute.KeyValue
}

func newShimMetrics(mp metric.MeterProvider, resource string, logger logrus.FieldLogger) *shimMetrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)
	m := &shimMetrics{resource: attribute.String("genconn.resource", resource)}
	var err error

	m.completions, err = meter.Int64Counter(
		"genconn.shim.completions",
		metric.WithDescription("Completion callbacks delivered to handlers"),
	)
	logMetricInitError(logger, "genconn.shim.completions", err)

	m.redeliveries, err = meter.Int64Counter(
		"genconn.shim.redeliveries",
		metric.WithDescription("Commit or rollback calls ignored as redeliveries"),
	)
	logMetricInitError(logger, "genconn.shim.redeliveries", err)

	m.workDuration, err = meter.Int64Histogram(
		"genconn.shim.work.duration_ms",
		metric.WithDescription("Time spent in participant work"),
		metric.WithUnit("ms"),
	)
	logMetricInitError(logger, "genconn.shim.work.duration_ms", err)

	return m
}

func (m *shimMetrics) recordCompletion(ctx context.Context, outcome string, err error) {
	if m == nil || m.completions == nil {
		return
	}
	m.completions.Add(ctx, 1, metric.WithAttributes(
		m.resource,
		attribute.String("genconn.outcome", outcome),
		attribute.String("genconn.result", resultLabel(err)),
	))
}

func (m *shimMetrics) recordRedelivery(ctx context.Context, outcome string) {
	if m == nil || m.redeliveries == nil {
		return
	}
	m.redeliveries.Add(ctx, 1, metric.WithAttributes(m.resource, attribute.String("genconn.outcome", outcome)))
}

func (m *shimMetrics) recordWork(ctx context.Context, duration time.Duration, err error) {
	if m == nil || m.workDuration == nil {
		return
	}
	m.workDuration.Record(ctx, duration.Milliseconds(), metric.WithAttributes(
		m.resource,
		attribute.String("genconn.result", resultLabel(err)),
	))
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func logMetricInitError(logger logrus.FieldLogger, name string, err error) {
	if err == nil || logger == nil {
		return
	}
	logger.WithError(err).WithField("name", name).Warn("metric init failed")
}
