// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package telemetry instruments wait and retry invocations with
// OpenTelemetry traces and metrics.
//
// An Instrumentation is an event handler. Install it in a Checker or
// an Executor and every invocation is recorded as a span, with an
// event per attempt and counters for attempts and timeouts:
//
//	inst, err := telemetry.New()
//	if err != nil {
//		return err
//	}
//	var handlers abide.HandlerGroup
//	inst.Install(&handlers)
//	checker := &abide.Checker{Handlers: &handlers}
//
// Spans are children of whatever span is active on the context passed
// to the engine, so waits and retries nest under the caller's trace.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/abidelabs/abide"
	"github.com/abidelabs/abide/attempt"
)

const scope = "github.com/abidelabs/abide/telemetry"

// spanContextKey keys the traced context stored on an execution. The
// unexported type keeps it from colliding with other handlers' values.
type spanContextKey struct{}

// Instrumentation records wait and retry activity using the global
// OpenTelemetry tracer and meter providers. It is an abide.Handler and
// is safe for concurrent use by multiple executions.
type Instrumentation struct {
	tracer       trace.Tracer
	attempts     metric.Int64Counter
	timeouts     metric.Int64Counter
	waitTimeouts metric.Int64Counter
}

// New creates an Instrumentation backed by the global tracer and meter
// providers.
func New() (*Instrumentation, error) {
	meter := otel.Meter(scope)

	attempts, err := meter.Int64Counter("abide.attempts",
		metric.WithDescription("Number of predicate evaluations and operation invocations made."))
	if err != nil {
		return nil, err
	}
	timeouts, err := meter.Int64Counter("abide.attempt.timeouts",
		metric.WithDescription("Number of attempts that failed with a timeout error."))
	if err != nil {
		return nil, err
	}
	waitTimeouts, err := meter.Int64Counter("abide.wait.timeouts",
		metric.WithDescription("Number of waits that ended without the condition being satisfied."))
	if err != nil {
		return nil, err
	}

	return &Instrumentation{
		tracer:       otel.Tracer(scope),
		attempts:     attempts,
		timeouts:     timeouts,
		waitTimeouts: waitTimeouts,
	}, nil
}

// Install adds the instrumentation to the handler chains of every
// event it observes.
func (i *Instrumentation) Install(g *abide.HandlerGroup) {
	for _, evt := range []abide.Event{
		abide.BeforeExecutionStart,
		abide.BeforeAttempt,
		abide.AfterAttemptTimeout,
		abide.AfterAttempt,
		abide.AfterWaitTimeout,
		abide.AfterExecutionEnd,
	} {
		g.PushBack(evt, i)
	}
}

// Handle implements abide.Handler.
func (i *Instrumentation) Handle(evt abide.Event, e *attempt.Execution) {
	switch evt {
	case abide.BeforeExecutionStart:
		ctx, _ := i.tracer.Start(e.Context(), "abide.execution",
			trace.WithAttributes(attribute.String("abide.execution.id", e.ID.String())))
		e.SetValue(spanContextKey{}, ctx)
	case abide.BeforeAttempt:
		trace.SpanFromContext(i.ctx(e)).AddEvent("attempt",
			trace.WithAttributes(attribute.Int("abide.attempt", e.Attempt)))
	case abide.AfterAttemptTimeout:
		i.timeouts.Add(i.ctx(e), 1)
	case abide.AfterAttempt:
		i.attempts.Add(i.ctx(e), 1)
		if e.Err != nil {
			trace.SpanFromContext(i.ctx(e)).RecordError(e.Err,
				trace.WithAttributes(attribute.Int("abide.attempt", e.Attempt)))
		}
	case abide.AfterWaitTimeout:
		i.waitTimeouts.Add(i.ctx(e), 1)
	case abide.AfterExecutionEnd:
		span := trace.SpanFromContext(i.ctx(e))
		span.SetAttributes(attribute.Int("abide.attempts", e.Attempt+1))
		if e.Err != nil {
			span.SetStatus(codes.Error, e.Err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// ctx returns the traced context stored on the execution, falling back
// to the execution's own context if the start event was never seen.
func (i *Instrumentation) ctx(e *attempt.Execution) context.Context {
	if ctx, ok := e.Value(spanContextKey{}).(context.Context); ok {
		return ctx
	}
	return e.Context()
}
