// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"

	"github.com/abidelabs/abide/attempt"
	"github.com/abidelabs/abide/poll"
)

// Waiter is the interface that wraps the basic WaitUntil method.
//
// WaitUntil polls a predicate until it is satisfied, a deadline is
// reached, or the context is done, and reports the outcome. Checker
// implements the Waiter interface, and any other implementation must
// behave substantially the same as Checker.WaitUntil.
type Waiter interface {
	WaitUntil(ctx context.Context, p poll.Predicate) (*attempt.Execution, poll.Outcome)
}

// Runner is the interface that wraps the basic Run method.
//
// Run invokes an operation under a retry policy until it succeeds or
// the policy gives up. Executor implements the Runner interface, and
// any other implementation must behave substantially the same as
// Executor.Run.
//
// Any Runner can execute value-returning operations via the RunValue
// function.
type Runner interface {
	Run(ctx context.Context, op Operation) (*attempt.Execution, error)
}
