// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package abide

import (
	"context"
	"errors"

	"github.com/abidelabs/abide/poll"
	"golang.org/x/sync/errgroup"
)

var errWaitTimedOut = errors.New("abide: wait timed out")

// WaitAll waits until every one of the given predicates is satisfied.
// Each predicate is polled on its own goroutine under the checker's
// usual deadline and interval, so the overall wait takes as long as
// the slowest condition rather than the sum of all of them.
//
// The outcome is Satisfied only if every predicate was satisfied
// before the deadline. The first predicate to time out ends the whole
// wait with TimedOut and cancels the waits still in flight. If ctx is
// done first, the outcome is Canceled.
//
// WaitAll with no predicates is trivially Satisfied.
func (c *Checker) WaitAll(ctx context.Context, ps ...poll.Predicate) poll.Outcome {
	if len(ps) == 0 {
		return poll.Satisfied
	}
	if ctx == nil {
		ctx = context.Background()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range ps {
		p := p
		g.Go(func() error {
			_, out := c.WaitUntil(gctx, p)
			switch out {
			case poll.Satisfied:
				return nil
			case poll.TimedOut:
				return errWaitTimedOut
			default:
				return context.Cause(gctx)
			}
		})
	}

	err := g.Wait()
	switch {
	case err == nil:
		return poll.Satisfied
	case errors.Is(err, errWaitTimedOut):
		return poll.TimedOut
	default:
		return poll.Canceled
	}
}

// WaitAny waits until any one of the given predicates is satisfied.
// Each predicate is polled on its own goroutine under the checker's
// usual deadline and interval; the first to be satisfied wins and the
// waits still in flight are cancelled.
//
// The outcome is TimedOut if every predicate timed out without being
// satisfied, and Canceled if ctx was done first.
//
// WaitAny with no predicates is trivially Satisfied.
func (c *Checker) WaitAny(ctx context.Context, ps ...poll.Predicate) poll.Outcome {
	if len(ps) == 0 {
		return poll.Satisfied
	}
	if ctx == nil {
		ctx = context.Background()
	}

	actx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make(chan poll.Outcome, len(ps))
	for _, p := range ps {
		p := p
		go func() {
			_, out := c.WaitUntil(actx, p)
			outcomes <- out
		}()
	}

	satisfied := false
	timedOut := false
	for i := 0; i < len(ps); i++ {
		switch <-outcomes {
		case poll.Satisfied:
			satisfied = true
			// Stop the losers; keep draining so every poller has
			// exited before we return.
			cancel()
		case poll.TimedOut:
			timedOut = true
		}
	}

	switch {
	case satisfied:
		return poll.Satisfied
	case ctx.Err() != nil:
		return poll.Canceled
	case timedOut:
		return poll.TimedOut
	default:
		return poll.Canceled
	}
}
