package workerpool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"jan-server/services/chat-insights/internal/infrastructure/metrics"
)

// Instrumenter wraps pool tasks with spans and OTEL instruments.
type Instrumenter struct {
	tracer        trace.Tracer
	workersActive metric.Int64UpDownCounter
	jobDuration   metric.Float64Histogram
	jobsTotal     metric.Int64Counter
}

// NewInstrumenter creates instruments on meter. Nil tracer or meter fall back to
// the global providers, which are no-ops until observability is set up.
func NewInstrumenter(tracer trace.Tracer, meter metric.Meter, serviceName string) (*Instrumenter, error) {
	prefix := strings.ReplaceAll(serviceName, "-", "_")
	if tracer == nil {
		tracer = otel.Tracer(serviceName)
	}
	if meter == nil {
		meter = otel.Meter(serviceName)
	}

	workersActive, err := meter.Int64UpDownCounter(
		fmt.Sprintf("jan_%s_workers_active", prefix),
		metric.WithDescription("Number of active workers"),
	)
	if err != nil {
		return nil, err
	}

	jobDuration, err := meter.Float64Histogram(
		fmt.Sprintf("jan_%s_job_duration_seconds", prefix),
		metric.WithDescription("Worker pool job duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	jobsTotal, err := meter.Int64Counter(
		fmt.Sprintf("jan_%s_jobs_total", prefix),
		metric.WithDescription("Total worker pool jobs processed"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrumenter{
		tracer:        tracer,
		workersActive: workersActive,
		jobDuration:   jobDuration,
		jobsTotal:     jobsTotal,
	}, nil
}

// InstrumentJob runs fn inside a span and records duration and outcome.
func (w *Instrumenter) InstrumentJob(ctx context.Context, jobType string, fn func(context.Context) error) error {
	w.workersActive.Add(ctx, 1)
	metrics.WorkerPoolInFlight.Inc()
	defer func() {
		w.workersActive.Add(ctx, -1)
		metrics.WorkerPoolInFlight.Dec()
	}()

	ctx, span := w.tracer.Start(ctx, fmt.Sprintf("worker.%s", jobType),
		trace.WithAttributes(attribute.String("job.type", jobType)),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("job.type", jobType),
		attribute.String("status", status),
	)
	w.jobDuration.Record(ctx, duration, attrs)
	w.jobsTotal.Add(ctx, 1, attrs)

	return err
}
