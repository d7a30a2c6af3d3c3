// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"errors"

	"github.com/abidelabs/abide/retry"
	"github.com/sony/gobreaker"
)

// Breaker adapts op to run under the given circuit breaker. While the
// breaker is closed the returned operation behaves exactly like op;
// once the breaker opens, invocations fail fast with
// gobreaker.ErrOpenState without running op at all.
//
// Combine Breaker with the NotBreakerOpen classifier so an open
// breaker ends a retry run instead of burning the remaining budget on
// fast failures:
//
//	op := abide.Breaker(cb, submit)
//	policy := retry.NewPolicy(abide.NotBreakerOpen(retry.RetryAll),
//		retry.Times(5), retry.DefaultWaiter)
func Breaker(cb *gobreaker.CircuitBreaker, op Operation) Operation {
	if cb == nil {
		panic("abide: nil circuit breaker")
	}
	if op == nil {
		panic("abide: nil operation")
	}
	return func(ctx context.Context) error {
		_, err := cb.Execute(func() (interface{}, error) {
			return nil, op(ctx)
		})
		return err
	}
}

// BreakerOpen reports whether err means the circuit breaker refused
// the attempt rather than the attempt itself failing.
func BreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests)
}

// NotBreakerOpen wraps a classifier so breaker refusals are
// non-retryable. All other failures keep next's verdict.
func NotBreakerOpen(next retry.Classifier) retry.ClassifierFunc {
	if next == nil {
		panic("abide: nil classifier")
	}
	return func(err error) retry.Disposition {
		if BreakerOpen(err) {
			return retry.NonRetryable
		}
		return next.Classify(err)
	}
}
