// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides flexible policies for retrying failed
// operations: which failure kinds are worth another attempt, how many
// attempts the budget allows, and how long to wait between them.
//
// The interface Policy defines a retry policy as the composition of
// three roles: a Classifier sorting failures into retryable and
// non-retryable kinds, a Decider controlling the retry budget, and a
// Waiter computing the delay before the next attempt. All three have
// constructors for common cases, so a useful policy can be assembled
// quickly:
//
//	classifier := retry.Transient.Or(retry.IsKind(io.ErrUnexpectedEOF))
//	decider := retry.Times(3).And(retry.Before(30 * time.Second))
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now())
//	policy := retry.NewPolicy(classifier, decider, waiter)
//
// The retrying loop itself lives in the root package, on the Executor
// type. If the built-in functionality is insufficient, fully custom
// retry policies can be created via custom implementations of
// Classifier, Decider, Waiter, or Policy.
package retry
