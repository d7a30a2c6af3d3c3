// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abidelabs/abide/poll"
	"github.com/stretchr/testify/assert"
)

func TestWaitAll(t *testing.T) {
	c := &Checker{
		Timeout:  100 * time.Millisecond,
		Interval: poll.Every(5 * time.Millisecond),
		Logger:   quietLogger(),
	}
	t.Run("no predicates", func(t *testing.T) {
		assert.Equal(t, poll.Satisfied, c.WaitAll(context.Background()))
	})
	t.Run("all satisfied", func(t *testing.T) {
		var n1, n2 atomic.Int32
		p1 := func(_ context.Context) (bool, error) { return n1.Add(1) >= 2, nil }
		p2 := func(_ context.Context) (bool, error) { return n2.Add(1) >= 4, nil }
		assert.Equal(t, poll.Satisfied, c.WaitAll(context.Background(), p1, p2))
	})
	t.Run("one times out", func(t *testing.T) {
		start := time.Now()
		out := c.WaitAll(context.Background(), alwaysTrue, alwaysFalse)
		assert.Equal(t, poll.TimedOut, out)
		assert.GreaterOrEqual(t, time.Since(start), c.Timeout)
	})
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		slow := &Checker{
			Timeout:  time.Minute,
			Interval: poll.Every(5 * time.Millisecond),
			Logger:   quietLogger(),
		}
		start := time.Now()
		out := slow.WaitAll(ctx, alwaysFalse, alwaysFalse)
		assert.Equal(t, poll.Canceled, out)
		assert.Less(t, time.Since(start), time.Minute)
	})
}

func TestWaitAny(t *testing.T) {
	c := &Checker{
		Timeout:  100 * time.Millisecond,
		Interval: poll.Every(5 * time.Millisecond),
		Logger:   quietLogger(),
	}
	t.Run("no predicates", func(t *testing.T) {
		assert.Equal(t, poll.Satisfied, c.WaitAny(context.Background()))
	})
	t.Run("first winner ends the wait", func(t *testing.T) {
		start := time.Now()
		out := c.WaitAny(context.Background(), alwaysFalse, alwaysTrue)
		assert.Equal(t, poll.Satisfied, out)
		// The losing wait is cancelled rather than run to its deadline.
		assert.Less(t, time.Since(start), c.Timeout)
	})
	t.Run("all time out", func(t *testing.T) {
		start := time.Now()
		out := c.WaitAny(context.Background(), alwaysFalse, alwaysFalse)
		assert.Equal(t, poll.TimedOut, out)
		assert.GreaterOrEqual(t, time.Since(start), c.Timeout)
	})
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		slow := &Checker{
			Timeout:  time.Minute,
			Interval: poll.Every(5 * time.Millisecond),
			Logger:   quietLogger(),
		}
		out := slow.WaitAny(ctx, alwaysFalse, alwaysFalse)
		assert.Equal(t, poll.Canceled, out)
	})
}
