// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abidelabs/abide/retry"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})
}

func TestBreakerPanics(t *testing.T) {
	op := func(_ context.Context) error { return nil }
	assert.Panics(t, func() { Breaker(nil, op) })
	assert.Panics(t, func() { Breaker(newTestBreaker(), nil) })
}

func TestBreaker(t *testing.T) {
	t.Run("closed breaker passes through", func(t *testing.T) {
		opErr := errors.New("boom")
		n := 0
		op := Breaker(newTestBreaker(), func(_ context.Context) error {
			n++
			if n == 1 {
				return opErr
			}
			return nil
		})
		assert.Same(t, opErr, op(context.Background()))
		assert.NoError(t, op(context.Background()))
		assert.Equal(t, 2, n)
	})
	t.Run("open breaker fails fast", func(t *testing.T) {
		n := 0
		op := Breaker(newTestBreaker(), func(_ context.Context) error {
			n++
			return errors.New("boom")
		})
		require.Error(t, op(context.Background()))
		require.Error(t, op(context.Background()))
		err := op(context.Background())
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
		assert.Equal(t, 2, n)
	})
}

func TestBreakerOpen(t *testing.T) {
	assert.True(t, BreakerOpen(gobreaker.ErrOpenState))
	assert.True(t, BreakerOpen(gobreaker.ErrTooManyRequests))
	assert.False(t, BreakerOpen(errors.New("boom")))
	assert.False(t, BreakerOpen(nil))
}

func TestNotBreakerOpen(t *testing.T) {
	assert.Panics(t, func() { NotBreakerOpen(nil) })
	c := NotBreakerOpen(retry.RetryAll)
	assert.Equal(t, retry.NonRetryable, c.Classify(gobreaker.ErrOpenState))
	assert.Equal(t, retry.NonRetryable, c.Classify(gobreaker.ErrTooManyRequests))
	assert.Equal(t, retry.Retryable, c.Classify(errors.New("boom")))
}

func TestBreakerUnderExecutor(t *testing.T) {
	// Once the breaker opens the classifier ends the run instead of
	// letting the remaining budget burn on fast failures.
	n := 0
	op := Breaker(newTestBreaker(), func(_ context.Context) error {
		n++
		return errors.New("boom")
	})
	policy := retry.NewPolicy(NotBreakerOpen(retry.RetryAll), retry.Times(10), retry.NewFixedWaiter(time.Millisecond))
	x := &Executor{Policy: policy, Logger: quietLogger()}
	e, err := x.Run(context.Background(), op)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, e.Attempt)
}
