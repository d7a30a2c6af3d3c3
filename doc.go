// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package abide provides bounded condition waiting and policy-driven
retry for test automation and other code that has to tolerate
asynchronous state: a UI that renders after the page loads, a service
that answers once it finishes starting, an endpoint that throws the
occasional 503.

Two engines do the work. A Checker polls a predicate against a
deadline:

	c := &abide.Checker{Timeout: 10 * time.Second, Interval: poll.Every(250 * time.Millisecond)}
	_, outcome := c.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
		return drv.Visible(ctx, "#account-table")
	})
	if outcome != poll.Satisfied {
		...
	}

Reaching the deadline is a normal outcome the caller branches on, not
an error, and a predicate that fails transiently only counts as "not
satisfied yet". An Executor runs a fallible operation under a retry
policy:

	x := &abide.Executor{Policy: retry.NewPolicy(
		probe.Retryable(429, 502, 503, 504),
		retry.Times(3),
		retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now()),
	)}
	_, err := x.Run(ctx, api.Post("/customers", "application/json", body))

Failures the policy classifies as non-retryable propagate unchanged on
first occurrence; a run that consumes its whole budget ends with a
*retry.ExhaustedError wrapping the terminal cause.

The engines are deliberately ignorant of browsers and HTTP. Package
driver defines the browser capability they poll through and package
probe builds predicates and operations over an HTTP client; both
produce plain closures the engines accept. Package config loads
checker and policy settings from YAML with environment overrides, and
package telemetry hooks the event system (HandlerGroup, Handler) to
record executions through OpenTelemetry.

Both engines are synchronous and blocking, and observe the caller's
context only between attempts: a predicate or operation that has
started always runs to completion. WaitAll and WaitAny fan several
condition waits out onto their own goroutines; everything else stays
on the calling goroutine.
*/
package abide
