// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package poll

import "context"

// A Predicate is a caller-supplied check evaluated repeatedly by a
// polling loop, for example "the login button is visible" or "the
// service answers on its health endpoint".
//
// A Predicate returns true when the condition it checks is satisfied.
// Returning an error counts as "not satisfied yet": the polling loop
// logs the error and keeps going, so a flaky check cannot abort a wait
// early. Predicates should be idempotent or free of side effects, and
// must be safe for concurrent use if the same predicate value is
// polled from multiple goroutines.
//
// The context passed to the predicate is the caller's invocation
// context. A predicate that performs slow work should honor it; the
// polling loop itself only observes the context between evaluations.
type Predicate func(ctx context.Context) (bool, error)

// Not returns a predicate that is satisfied exactly when p is not.
// Errors from p still count as "not satisfied yet" and propagate to
// the polling loop unchanged, without being inverted.
func Not(p Predicate) Predicate {
	return func(ctx context.Context) (bool, error) {
		ok, err := p(ctx)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// An Outcome is the result of a bounded wait: the condition was either
// observed before the deadline, or it was not. Reaching the deadline is
// a normal, reportable outcome, not an error.
type Outcome int

const (
	// Satisfied indicates the predicate returned true before the
	// deadline.
	Satisfied Outcome = iota
	// TimedOut indicates the deadline was reached without the
	// predicate ever returning true.
	TimedOut
	// Canceled indicates the caller's context was cancelled before
	// the predicate returned true and before the deadline was
	// reached.
	Canceled
)

var outcomeNames = []string{"Satisfied", "TimedOut", "Canceled"}

// String returns the name of the outcome.
func (o Outcome) String() string {
	if o < Satisfied || int(o) >= len(outcomeNames) {
		return "Outcome(unknown)"
	}
	return outcomeNames[o]
}
