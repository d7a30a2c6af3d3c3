// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"log/slog"
	"time"

	"github.com/abidelabs/abide/attempt"
	"github.com/abidelabs/abide/retry"
)

// An Operation is a fallible unit of work run under a retry policy,
// for example "submit the transfer form" or "POST the account
// payload". A nil return means the operation succeeded.
//
// A failed attempt may leave partial side effects behind (a
// half-submitted network call, a row inserted before an error). The
// Executor has no rollback capability: an Operation handed to it must
// be idempotent or otherwise safe to run again. That is a caller
// responsibility.
type Operation func(ctx context.Context) error

// An Executor invokes an operation repeatedly under a retry.Policy
// until it succeeds, the policy gives up, or the caller's context is
// done. Its zero value is a valid configuration.
//
// The zero value executor uses retry.DefaultPolicy, slog.Default() for
// logging, and an empty handler group (no event handlers).
//
// Attempts are strictly sequential: the next attempt never starts
// before the previous one has fully completed. An Executor holds no
// per-invocation state, so a single Executor is safe for concurrent
// use by multiple goroutines provided the operations it is given are
// themselves safe.
type Executor struct {
	// Policy classifies failures, budgets retries, and spaces
	// attempts.
	//
	// If Policy is nil, retry.DefaultPolicy is used.
	Policy retry.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the run.
	//
	// If Handlers is nil, no custom handlers are run.
	Handlers *HandlerGroup
	// Logger receives debug logging about failed attempts and a
	// warning when the retry budget is exhausted.
	//
	// If Logger is nil, slog.Default() is used.
	Logger *slog.Logger
}

// Run invokes op until it succeeds or the policy ends the run.
//
// On success Run returns immediately: no further attempts, no trailing
// delay. On failure the policy's Classifier is consulted first. A
// non-retryable failure propagates unchanged, at once, without
// consuming the remaining budget. A retryable failure for which the
// Decider refuses another attempt is returned wrapped in a
// *retry.ExhaustedError carrying the attempt count and the terminal
// cause. Otherwise the executor logs the failure, sleeps the Waiter's
// delay racing ctx, and tries again; if ctx is done during the sleep,
// the context's error is returned.
//
// The returned Execution is never nil. Its Attempt field holds the
// zero-based index of the last attempt made, and its Err field the
// error from that attempt (unwrapped of any exhaustion marker).
func (x *Executor) Run(ctx context.Context, op Operation) (*attempt.Execution, error) {
	if op == nil {
		panic("abide: nil operation")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pol := x.Policy
	if pol == nil {
		pol = retry.DefaultPolicy
	}

	handlers := x.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	logger := x.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := attempt.New(ctx)
	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

	defer func() {
		e.End = time.Now()
		handlers.run(AfterExecutionEnd, e)
	}()

	for {
		handlers.run(BeforeAttempt, e)
		err := op(ctx)
		e.Err = err
		if e.Timeout() {
			handlers.run(AfterAttemptTimeout, e)
		}
		handlers.run(AfterAttempt, e)
		if err == nil {
			return e, nil
		}
		handlers.run(AfterAttemptError, e)

		if pol.Classify(err) == retry.NonRetryable {
			logger.Debug("abide: non-retryable failure",
				"execution", e.ID, "attempt", e.Attempt, "error", err)
			return e, err
		}

		if !pol.Decide(e) {
			logger.Warn("abide: attempts exhausted",
				"execution", e.ID, "attempts", e.Attempt+1, "error", err)
			return e, &retry.ExhaustedError{Attempts: e.Attempt + 1, Err: err}
		}

		wait := pol.Wait(e)
		logger.Debug("abide: attempt failed, retrying",
			"execution", e.ID, "attempt", e.Attempt, "wait", wait, "error", err)
		if serr := sleep(ctx, wait); serr != nil {
			e.Err = serr
			return e, serr
		}

		e.Attempt++
	}
}

// Run invokes op under policy using an otherwise default Executor. It
// is shorthand for configuring an Executor for a one-off run.
func Run(ctx context.Context, op Operation, policy retry.Policy) (*attempt.Execution, error) {
	x := Executor{Policy: policy}
	return x.Run(ctx, op)
}

// RunValue invokes a value-returning operation under r, typically an
// *Executor, and returns the value from the succeeding attempt. On
// failure it returns the zero value of T alongside the error r
// reported.
func RunValue[T any](ctx context.Context, r Runner, op func(ctx context.Context) (T, error)) (T, error) {
	var v T
	_, err := r.Run(ctx, func(ctx context.Context) error {
		var err error
		v, err = op(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
