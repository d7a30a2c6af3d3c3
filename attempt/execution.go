// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package attempt

import (
	"context"
	"time"

	"github.com/abidelabs/abide/transient"
	"github.com/oklog/ulid/v2"
)

// An Execution represents the state of a single wait or retry
// invocation.
//
// When a Checker starts polling a predicate, or an Executor starts
// running an operation, an Execution is created for the invocation.
// The Execution is updated as attempts are made and is ultimately
// returned alongside the invocation's result.
//
// Policies and event handlers may attach values to an Execution using
// its SetValue method and read them back using Value. They should
// treat the structure's exported fields as read-only: the attempt
// state is what the polling and retry loops steer by.
type Execution struct {
	// ID uniquely identifies this execution. It is assigned when the
	// execution is created and is intended for correlating log lines
	// and trace data across attempts.
	ID ulid.ULID

	// Start is the start time of the execution. It is assigned a
	// non-zero value when the invocation starts and is constant
	// thereafter.
	Start time.Time

	// End is the end time of the execution. It contains the zero
	// value until the invocation ends, when it is set to the current
	// time.
	End time.Time

	// Attempt is the zero-based number of the current attempt: zero
	// for the initial predicate evaluation or operation invocation,
	// one for the first repeat, and so on.
	//
	// Once the execution has ended, Attempt holds the number of the
	// last attempt made. An operation that succeeded after an initial
	// attempt plus two retries ends with Attempt equal to 2.
	Attempt int

	// Err is the error produced by the most recent attempt. It is nil
	// if the most recent attempt succeeded, if an attempt is underway,
	// or before the execution starts.
	//
	// While an execution is in flight, Err may fluctuate between nil
	// and various non-nil values. Once the execution has ended, Err is
	// stable: for a retry run it is the same error value the Executor
	// returned (unwrapped of any exhaustion marker), and for a wait it
	// is the last error the predicate produced, if any.
	Err error

	// ctx is the caller's context for the invocation. It is only
	// observed between attempts; see the concurrency notes on the root
	// package.
	ctx context.Context

	// data holds arbitrary user data attached via SetValue.
	data context.Context
}

// New creates an Execution for an invocation governed by ctx. A nil
// ctx is treated as context.Background.
//
// New is called by the engines in the root package; there is normally
// no reason to construct an Execution yourself outside of tests.
func New(ctx context.Context) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Execution{
		ID:  ulid.Make(),
		ctx: ctx,
	}
}

// Context returns the context governing the invocation that created
// this execution. It never returns nil.
func (e *Execution) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration is End minus Start. Otherwise it is
// the current time minus Start, so the return value is monotonically
// increasing over the life of the execution and becomes static once
// the execution has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started. If it returns
// true, Start holds the execution start time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. If it returns true,
// End is non-zero and there will be no further changes to the
// execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// categorized as a timeout by package transient.
//
// Note that this reports on the most recent attempt only, not on
// whether the wait deadline was reached: a wait that ends in the
// TimedOut outcome does so without any error at all if its predicate
// simply kept returning false.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue attaches an arbitrary data value to the execution.
//
// The key follows the same rules as the key parameter of
// context.WithValue: it must be non-nil and comparable, and it should
// not be of a built-in type, to avoid collisions between independent
// handlers storing data on the same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
