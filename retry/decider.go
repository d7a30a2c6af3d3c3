// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/abidelabs/abide/attempt"
	"github.com/abidelabs/abide/transient"
)

// A Decider decides whether the retry budget allows another attempt.
// It is only consulted for failures the policy's Classifier has
// already ruled retryable.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times and Before, and the built-in
// decider TransientErr; or implement your own Decider. Use DeciderFunc
// to convert an ordinary function into a Decider, and to compose
// deciders logically using DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(e *attempt.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface and
// also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
//
// Simple DeciderFunc functions can be composed into complex decision
// trees using And and Or, so it is often convenient to work directly
// with DeciderFunc rather than with Decider.
type DeciderFunc func(e *attempt.Execution) bool

// DefaultTimes is the number of retries DefaultPolicy will allow, for
// a total of three attempts.
const DefaultTimes = 2

// TransientErr is a decider that allows a retry if the current error
// is transient according to transient.Categorize.
//
// TransientErr only looks at the error, so it always returns false
// when the attempt failed for a non-transient reason. Compose it with
// a budget decider such as Times to bound the number of attempts.
var TransientErr DeciderFunc = func(e *attempt.Execution) bool {
	return transient.Is(e.Err)
}

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current execution state.
func (f DeciderFunc) Decide(e *attempt.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns
// true if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *attempt.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *attempt.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the execution attempt index
// e.Attempt is less than n, and false otherwise. Times(0) never
// retries.
//
// Note that n counts retries, not attempts: a policy built with
// Times(2) makes at most three attempts in total.
func Times(n int) DeciderFunc {
	return func(e *attempt.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the start of the execution. The
// returned decider returns true while the execution duration is less
// than d, and false afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *attempt.Execution) bool {
		return e.Duration() < d
	}
}
