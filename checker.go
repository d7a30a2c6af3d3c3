// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"log/slog"
	"time"

	"github.com/abidelabs/abide/attempt"
	"github.com/abidelabs/abide/poll"
)

// DefaultTimeout is the wait deadline a zero-value Checker applies.
const DefaultTimeout = 30 * time.Second

var emptyHandlers = HandlerGroup{}

// A Checker repeatedly evaluates a condition predicate until it is
// satisfied or a deadline is reached. Its zero value is a valid
// configuration.
//
// The zero value checker uses DefaultTimeout as the deadline,
// poll.DefaultPolicy as the interval policy, slog.Default() for
// logging, and an empty handler group (no event handlers).
//
// A Checker holds no per-invocation state, so a single Checker is safe
// for concurrent use by multiple goroutines provided the predicates it
// is given are themselves safe.
//
// Reaching the deadline is an ordinary outcome, not a failure of the
// checker: callers branch on the returned poll.Outcome. A predicate
// that returns an error does not end the wait either; the error is
// logged at debug level and the evaluation counts as "not satisfied
// yet". The only inputs the checker refuses are programmer errors, a
// nil predicate or a negative timeout, which panic.
type Checker struct {
	// Timeout bounds the whole wait: no predicate evaluation starts
	// after Start + Timeout. The deadline is fixed when the wait
	// starts and never extended.
	//
	// If Timeout is zero, DefaultTimeout is used. A negative Timeout
	// panics.
	Timeout time.Duration
	// Interval decides how long to sleep between predicate
	// evaluations.
	//
	// If Interval is nil, poll.DefaultPolicy is used.
	Interval poll.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the wait.
	//
	// If Handlers is nil, no custom handlers are run.
	Handlers *HandlerGroup
	// Logger receives debug logging about individual evaluations,
	// including errors swallowed from the predicate.
	//
	// If Logger is nil, slog.Default() is used.
	Logger *slog.Logger
}

// WaitUntil polls p until it is satisfied, the checker's deadline is
// reached, or ctx is done, and reports which of the three happened. It
// never returns an error: a predicate error only means "not satisfied
// yet" for that evaluation.
//
// The first evaluation happens immediately; a condition that is
// already true is observed without any sleep. Between evaluations the
// checker sleeps one poll interval, racing the sleep against ctx. The
// predicate itself is never preempted: once an evaluation has started
// it runs to completion, and the deadline and ctx are only consulted
// between evaluations. Predicates doing slow work should watch ctx
// themselves.
//
// If the deadline has passed once an evaluation completes, or passes
// during the following sleep, WaitUntil returns poll.TimedOut without
// starting another evaluation. A timeout shorter than the poll
// interval therefore results in at most one evaluation.
//
// The returned Execution is never nil and describes the finished wait:
// its Attempt field counts the evaluations performed (zero-based), and
// its Err field holds the last error the predicate produced, if the
// wait ended with one outstanding.
func (c *Checker) WaitUntil(ctx context.Context, p poll.Predicate) (*attempt.Execution, poll.Outcome) {
	if p == nil {
		panic("abide: nil predicate")
	}
	if c.Timeout < 0 {
		panic("abide: timeout must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	interval := c.Interval
	if interval == nil {
		interval = poll.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := attempt.New(ctx)
	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()
	deadline := e.Start.Add(timeout)

	defer func() {
		e.End = time.Now()
		handlers.run(AfterExecutionEnd, e)
	}()

	for {
		handlers.run(BeforeAttempt, e)
		ok, err := p(ctx)
		e.Err = err
		if e.Timeout() {
			handlers.run(AfterAttemptTimeout, e)
		}
		handlers.run(AfterAttempt, e)
		if err != nil {
			// A failing check is not a failing wait.
			logger.Debug("abide: condition check failed",
				"execution", e.ID, "attempt", e.Attempt, "error", err)
			handlers.run(AfterAttemptError, e)
		} else if ok {
			return e, poll.Satisfied
		}

		if !time.Now().Before(deadline) {
			handlers.run(AfterWaitTimeout, e)
			return e, poll.TimedOut
		}

		if serr := sleep(ctx, interval.Interval(e)); serr != nil {
			e.Err = serr
			return e, poll.Canceled
		}

		if !time.Now().Before(deadline) {
			handlers.run(AfterWaitTimeout, e)
			return e, poll.TimedOut
		}

		e.Attempt++
	}
}

// WaitUntil polls p with a fixed poll interval until it is satisfied
// or timeout elapses, using an otherwise default Checker. It is
// shorthand for configuring a Checker for a one-off wait.
func WaitUntil(ctx context.Context, p poll.Predicate, timeout, interval time.Duration) (*attempt.Execution, poll.Outcome) {
	c := Checker{Timeout: timeout, Interval: poll.Every(interval)}
	return c.WaitUntil(ctx, p)
}
