// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/abidelabs/abide/attempt"
)

// A Policy controls if and how a failed operation is retried. After
// every failed attempt, the Policy classifies the failure (Classifier),
// decides whether the retry budget allows another attempt (Decider),
// and, if so, determines how long to wait before that attempt (Waiter).
//
// The executing loop consults the three roles in that order: a failure
// classified NonRetryable propagates immediately, without consuming the
// remaining budget and without any delay; a Retryable failure is then
// subject to the Decider, and the Waiter is only consulted when the
// Decider has allowed a retry.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
//
// While you can implement Policy yourself, it is usually simpler to
// compose one from existing Classifier, Decider, and Waiter
// implementations using NewPolicy, or to use one of the built-in
// policies DefaultPolicy and Never.
type Policy interface {
	Classifier
	Decider
	Waiter
}

// DefaultPolicy is a general-purpose retry policy suitable for test
// harness use: every failure is considered retryable, up to
// DefaultTimes retries are allowed, and the wait between attempts
// follows DefaultWaiter's jittered exponential backoff.
var DefaultPolicy Policy = policy{RetryAll, Times(DefaultTimes), DefaultWaiter}

// Never is a policy that never retries: the first failure, whatever
// its kind, is final.
var Never Policy = policy{RetryAll, Times(0), DefaultWaiter}

type policy struct {
	classifier Classifier
	decider    Decider
	waiter     Waiter
}

// NewPolicy composes a Classifier, a Decider, and a Waiter into a
// retry Policy.
func NewPolicy(c Classifier, d Decider, w Waiter) Policy {
	if c == nil {
		panic("abide/retry: nil classifier")
	}
	if d == nil {
		panic("abide/retry: nil decider")
	}
	if w == nil {
		panic("abide/retry: nil waiter")
	}
	return policy{classifier: c, decider: d, waiter: w}
}

func (p policy) Classify(err error) Disposition {
	return p.classifier.Classify(err)
}

func (p policy) Decide(e *attempt.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *attempt.Execution) time.Duration {
	return p.waiter.Wait(e)
}
