// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/abidelabs/abide/attempt"
)

// A Waiter specifies how long to sleep before retrying a failed
// attempt. It is only consulted after the policy's Decider has allowed
// a retry; the sleep is applied between attempts, never before the
// first or after the last.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// This package provides two Waiter constructors, NewFixedWaiter and
// NewExpWaiter, and a concrete instance suitable for many typical use
// cases, DefaultWaiter.
type Waiter interface {
	Wait(e *attempt.Execution) time.Duration
}

// DefaultWaiter is the default retry wait policy. It uses a jittered
// exponential backoff formula with a base wait of 50 milliseconds and
// a maximum wait of 1 second.
var DefaultWaiter = NewExpWaiter(50*time.Millisecond, 1*time.Second, time.Now())

// NewFixedWaiter constructs a Waiter that always returns the given
// duration, which may be zero for back-to-back retries.
//
// Use NewFixedWaiter to obtain a constant delay between attempts.
func NewFixedWaiter(d time.Duration) Waiter {
	if d < 0 {
		panic("abide/retry: fixed wait must not be negative")
	}
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *attempt.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing an exponential backoff
// formula with optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**attempt, max)
//
// Base and max must be positive values, and max must be at least equal
// to base.
//
// Parameter jitter is used to generate a random wait between 0 and
// ceil. To make a waiter that does not jitter and simply waits ceil
// on each attempt, pass nil for jitter. Otherwise you may specify
// either a random number generator seed value (as a time.Time, int, or
// int64) or a random number generator (as a rand.Source or *rand.Rand).
// If a seed value is specified, it is used to seed a random number
// generator for calculating jitter.
func NewExpWaiter(base, max time.Duration, jitter any) Waiter {
	if base < 1 {
		panic("abide/retry: base must be positive")
	}
	if max < base {
		panic("abide/retry: max must be at least base")
	}
	return &jitterExpWaiter{
		base: base,
		max:  max,
		rand: jitterToRand(jitter),
	}
}

type jitterExpWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *jitterExpWaiter) Wait(e *attempt.Execution) time.Duration {
	exp := int64(1) << e.Attempt
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || int64(w.max) < ceil {
		ceil = int64(w.max)
	}

	duration := ceil
	if ceil > 0 {
		w.lock.Lock()
		defer w.lock.Unlock()
		if w.rand != nil {
			duration = w.rand.Int63n(ceil)
		}
	}

	return time.Duration(duration)
}

func jitterToRand(jitter any) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("abide/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("abide/retry: invalid jitter type")
	}
	return rand.New(s)
}
