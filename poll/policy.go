// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"time"

	"github.com/abidelabs/abide/attempt"
)

// A Policy decides how long a polling loop sleeps between successive
// predicate evaluations during a bounded wait.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Interval returns the sleep duration to apply after the attempt
	// recorded in e failed to satisfy the condition. The return value
	// must not be negative.
	Interval(e *attempt.Execution) time.Duration
}

// DefaultPolicy is the default poll interval policy. It evaluates the
// predicate twice a second.
var DefaultPolicy Policy = Every(500 * time.Millisecond)

// Every constructs a Policy that sleeps for the same fixed duration
// between every pair of predicate evaluations. This is the typical
// poll behavior of UI wait helpers.
//
// Every panics if d is not positive.
func Every(d time.Duration) Policy {
	if d < 1 {
		panic("abide/poll: interval must be positive")
	}
	return policy([]time.Duration{d})
}

// Steps constructs a Policy whose interval varies with the attempt
// number: the first sleep uses first, the next uses rest[0], and so
// on. Once the steps are used up the last one repeats.
//
// Use Steps to poll eagerly while a condition is likely to flip
// quickly and back off once it becomes clear the wait will be long:
//
//	p := poll.Steps(50*time.Millisecond, 200*time.Millisecond, time.Second)
//
// Steps panics if any step is not positive.
func Steps(first time.Duration, rest ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(rest))
	p[0] = first
	p = append(p, rest...)
	for _, d := range p {
		if d < 1 {
			panic("abide/poll: interval must be positive")
		}
	}
	return policy(p)
}

type policy []time.Duration

func (p policy) Interval(e *attempt.Execution) time.Duration {
	i := e.Attempt
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
