// Package metrics holds the OpenTelemetry instruments shared across the
// appraisal pipeline.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Recorder wraps the instruments emitted by the appraisal engine.
type Recorder struct {
	evaluations metric.Int64Counter
	fallbacks   metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewRecorder registers the appraiser instruments on the given meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	evaluations, err := meter.Int64Counter("appraiser.evaluations",
		metric.WithDescription("Number of appraisal evaluations by outcome."))
	if err != nil {
		return nil, err
	}

	fallbacks, err := meter.Int64Counter("appraiser.adapter.fallbacks",
		metric.WithDescription("Number of adapter calls that fell back to the local estimator."))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("appraiser.evaluation.duration",
		metric.WithDescription("End-to-end evaluation latency in seconds."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		evaluations: evaluations,
		fallbacks:   fallbacks,
		duration:    duration,
	}, nil
}

// Evaluation records one finished evaluation with its outcome.
func (r *Recorder) Evaluation(ctx context.Context, outcome string) {
	if r == nil {
		return
	}

	r.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Fallback records an adapter falling back to the local estimator.
func (r *Recorder) Fallback(ctx context.Context, provider string, reason string) {
	if r == nil {
		return
	}

	r.fallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("reason", reason),
	))
}

// Duration records the latency of one evaluation.
func (r *Recorder) Duration(ctx context.Context, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.duration.Record(ctx, elapsed.Seconds())
}
