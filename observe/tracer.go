// SPDX-License-Identifier: MIT

package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// SpanPrefix is prepended to the algorithm name to form span names.
const SpanPrefix = "shortest."

// Tracer opens one span per run: started at Start as a child of the context
// given with shortest.WithContext, ended at Finish with the run's stats.
type Tracer struct {
	tracer trace.Tracer
}

var _ shortest.Observer = (*Tracer)(nil)

// NewTracer wraps tracer. Panics on nil.
func NewTracer(tracer trace.Tracer) *Tracer {
	if tracer == nil {
		panic("observe: NewTracer(nil)")
	}

	return &Tracer{tracer: tracer}
}

// Start opens the span.
func (t *Tracer) Start(ctx context.Context, algorithm string) context.Context {
	ctx, _ = t.tracer.Start(ctx, SpanPrefix+algorithm,
		trace.WithAttributes(attribute.String("paths.algorithm", algorithm)),
	)

	return ctx
}

// Finish annotates and ends the span opened by Start.
func (t *Tracer) Finish(ctx context.Context, stats shortest.Stats) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("paths.settled", stats.Settled),
		attribute.Int("paths.relaxed", stats.Relaxed),
		attribute.Int("paths.improved", stats.Improved),
		attribute.Int("paths.yielded", stats.Yielded),
		attribute.Int64("paths.duration_us", stats.Duration.Microseconds()),
	)
	if stats.Err != nil {
		span.RecordError(stats.Err)
		span.SetStatus(codes.Error, stats.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
